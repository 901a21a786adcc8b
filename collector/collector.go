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

// Package collector extracts templates from a parallel corpus by
// finding source nouns with an unambiguous English counterpart.
package collector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/templates"
	"github.com/czcorpus/termsynth/terms"
	"github.com/rs/zerolog/log"
)

const (
	DfltMaxLines = 1000
	maxLineSize  = 1024 * 1024
)

// Stats contains counters of a single collector run.
type Stats struct {
	LinesRead           int `json:"linesRead"`
	LinesParsed         int `json:"linesParsed"`
	Unparsable          int `json:"unparsable"`
	Malformed           int `json:"malformed"`
	NounsConsidered     int `json:"nounsConsidered"`
	TemplatesEmitted    int `json:"templatesEmitted"`
	Ambiguous           int `json:"ambiguous"`
	NoMatch             int `json:"noMatch"`
	IncompleteSignature int `json:"incompleteSignature"`
}

// TemplateCollector drives the extraction. For each corpus line
// (english<TAB>source) it parses the source sentence and creates
// a template for each noun which has exactly one English counterpart
// matching exactly once in the English sentence.
type TemplateCollector struct {
	parser   parser.Parser
	glossary terms.Glossary
	maxLines int
	stats    Stats
}

func (tc *TemplateCollector) Stats() Stats {
	return tc.stats
}

// Run processes the corpus and writes found templates to out.
// The run stops once the parser has been invoked maxLines times.
func (tc *TemplateCollector) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var numParsed int
	for sc.Scan() {
		if numParsed >= tc.maxLines {
			log.Info().Int("maxLines", tc.maxLines).Msg("reached max. number of lines to process")
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tc.stats.LinesRead++
		items := strings.Split(line, "\t")
		if len(items) != 2 {
			log.Warn().Int("line", tc.stats.LinesRead).Msgf("Malformed corpus line: '%s'", line)
			tc.stats.Malformed++
			continue
		}
		numParsed++
		tpls, err := tc.Collect(ctx, items[0], items[1])
		if err != nil {
			return tc.stats, err
		}
		for _, tpl := range tpls {
			if err := tpl.Write(out); err != nil {
				return tc.stats, fmt.Errorf("failed to write template: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return tc.stats, fmt.Errorf("failed to read corpus: %w", err)
	}
	return tc.stats, nil
}

// Collect parses a single sentence pair and returns all the templates
// which can be derived from it. An unparsable sentence produces no
// templates and no error.
func (tc *TemplateCollector) Collect(ctx context.Context, enSent, srcSent string) ([]*templates.Template, error) {
	sent, err := tc.parser.Parse(ctx, srcSent)
	if errors.Is(err, parser.ErrUnparsable) {
		tc.stats.Unparsable++
		return nil, nil

	} else if err != nil {
		return nil, fmt.Errorf("failed to collect templates: %w", err)
	}
	if len(sent.Terminals) == 0 {
		tc.stats.Unparsable++
		return nil, nil
	}
	tc.stats.LinesParsed++
	var ans []*templates.Template
	for _, terminal := range sent.Terminals {
		if !terminal.IsNoun() || !terminal.IsSingleToken() {
			continue
		}
		tc.stats.NounsConsidered++
		log.Debug().Str("noun", terminal.Text).Str("lemma", terminal.Lemma).Msg("considering noun")
		candidates, ok := tc.glossary.Candidates(terminal.Lemma)
		if !ok {
			continue
		}
		match := findTarget(enSent, candidates, terminal.HasVariant(string(grammar.NumberPlural)))
		switch match.state {
		case noMatch:
			tc.stats.NoMatch++
			continue
		case ambiguous:
			tc.stats.Ambiguous++
			continue
		}
		tpl, err := templates.Create(sent, terminal, enSent, match.word, match.pattern)
		if errors.Is(err, grammar.ErrIncompleteSignature) {
			log.Warn().Err(err).Str("noun", terminal.Text).Msg("skipping noun")
			tc.stats.IncompleteSignature++
			continue

		} else if err != nil {
			return nil, fmt.Errorf("failed to collect templates: %w", err)
		}
		ans = append(ans, tpl)
		tc.stats.TemplatesEmitted++
	}
	return ans, nil
}

// New creates a collector. A non-positive maxLines means DfltMaxLines.
func New(p parser.Parser, glossary terms.Glossary, maxLines int) *TemplateCollector {
	if maxLines <= 0 {
		maxLines = DfltMaxLines
	}
	return &TemplateCollector{
		parser:   p,
		glossary: glossary,
		maxLines: maxLines,
	}
}

// --------------

type matchState int

const (
	noMatch matchState = iota
	uniqueMatch
	ambiguous
)

type targetMatch struct {
	state   matchState
	word    string
	pattern *terms.WordPattern
}

// findTarget searches the English sentence for the noun's translation
// candidates. The result is a unique match only if exactly one candidate
// is found and it is found exactly once.
func findTarget(enSent string, candidates []terms.Candidate, plural bool) targetMatch {
	var ans targetMatch
	for _, cand := range candidates {
		pattern := cand.Pattern(plural)
		found := pattern.FindAllStringIndex(enSent, 2)
		if len(found) == 0 {
			continue
		}
		if len(found) > 1 || ans.state == uniqueMatch {
			return targetMatch{state: ambiguous}
		}
		ans = targetMatch{
			state:   uniqueMatch,
			word:    enSent[found[0][0]:found[0][1]],
			pattern: pattern,
		}
	}
	return ans
}
