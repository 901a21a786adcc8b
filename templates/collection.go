// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package templates

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/terms"
	"github.com/rs/zerolog/log"
)

const (
	maxLineSize = 1024 * 1024
)

var (
	ErrNoTemplateAvailable   = errors.New("no template available for the gender")
	ErrInsufficientTemplates = errors.New("insufficient number of templates")
)

// Collection holds templates partitioned by the gender of
// their placeholder.
type Collection struct {
	templates map[grammar.Gender][]*Template
	rnd       *rand.Rand
}

// Append adds a template to the collection.
func (c *Collection) Append(tpl *Template) {
	g := tpl.Gender()
	c.templates[g] = append(c.templates[g], tpl)
}

// Len returns total number of templates.
func (c *Collection) Len() int {
	var ans int
	for _, v := range c.templates {
		ans += len(v)
	}
	return ans
}

// GenderLen returns number of templates for the gender.
func (c *Collection) GenderLen(g grammar.Gender) int {
	return len(c.templates[g])
}

// Read loads templates from a template file (english<TAB>source per line).
// Malformed lines are logged and skipped. The function returns the number
// of loaded templates.
func (c *Collection) Read(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNum, numLoaded int
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tgt, src, ok := strings.Cut(line, "\t")
		if !ok {
			log.Warn().Int("line", lineNum).Msg("Malformed template line, missing tab separator")
			continue
		}
		tpl, err := Load(src, tgt)
		if err != nil {
			log.Warn().Err(err).Int("line", lineNum).Msg("Failed to load template, skipping")
			continue
		}
		c.Append(tpl)
		numLoaded++
	}
	if err := sc.Err(); err != nil {
		return numLoaded, fmt.Errorf("failed to read templates: %w", err)
	}
	return numLoaded, nil
}

// Generate creates up to count sentence pairs for the term using
// distinct randomly chosen templates of the term's gender. Templates
// requiring a form the term does not have are skipped, so the result
// may be shorter than count.
func (c *Collection) Generate(ctx context.Context, term Inflector, count int) ([]SentencePair, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid number of sentences to generate: %d", count)
	}
	bucket := c.templates[term.Gender()]
	if len(bucket) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplateAvailable, term.Gender())
	}
	if len(bucket) < count {
		return nil, fmt.Errorf(
			"%w: %d requested, %d available for gender %s",
			ErrInsufficientTemplates, count, len(bucket), term.Gender())
	}
	ans := make([]SentencePair, 0, count)
	for _, idx := range c.rnd.Perm(len(bucket))[:count] {
		tpl := bucket[idx]
		pair, err := tpl.Substitute(ctx, term)
		if errors.Is(err, terms.ErrUnrealizableInflection) {
			log.Debug().
				Err(err).
				Str("signature", tpl.Signature().String()).
				Msg("skipping template")
			continue

		} else if err != nil {
			return nil, err
		}
		ans = append(ans, pair)
	}
	return ans, nil
}

// NewCollection creates an empty collection. Sampling is driven by
// the seed, zero seed means a time based one.
func NewCollection(seed int64) *Collection {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Collection{
		templates: make(map[grammar.Gender][]*Template),
		rnd:       rand.New(rand.NewSource(seed)),
	}
}
