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

// Package cache provides a persistent cache for lexicon lookups so
// repeated runs over the same vocabulary do not hit the lexicon
// database again.
package cache

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/rs/zerolog/log"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	OpLookupLemma = "lemma"
	OpLookupForms = "forms"

	DfltTTLSecs = 3600 * 24 * 7
)

type Conf struct {
	FileRootPath string `json:"fileRootPath"`
	RedisAddr    string `json:"redisAddr"`
	RedisDB      int    `json:"redisDB"`
	TTLSecs      int    `json:"ttlSecs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.FileRootPath != "" && conf.RedisAddr != "" {
		return fmt.Errorf("%s: only one of fileRootPath, redisAddr can be set", context)
	}
	if conf.TTLSecs < 0 {
		return fmt.Errorf("%s.ttlSecs must be non-negative", context)

	} else if conf.TTLSecs == 0 && (conf.FileRootPath != "" || conf.RedisAddr != "") {
		conf.TTLSecs = DfltTTLSecs
		log.Warn().Msgf("%s.ttlSecs not specified, using default %d", context, DfltTTLSecs)
	}
	return nil
}

// Query identifies a single lexicon lookup.
type Query struct {
	Op        string
	Lemma     string
	WordClass string
	Case      grammar.Case
}

// ID returns a stable hash of the query.
func (q Query) ID() []byte {
	h := sha1.New()
	h.Write([]byte(strings.Join(
		[]string{q.Op, q.Lemma, q.WordClass, string(q.Case)}, "\t")))
	return h.Sum(nil)
}

// Entry is a cached result of a lexicon lookup.
type Entry struct {
	Entries []lexicon.Entry
	Forms   []lexicon.Form
}

type Store interface {
	Get(ctx context.Context, q Query) (Entry, error)
	Set(ctx context.Context, q Query, value Entry) error
}

// NewStore creates a store based on the configuration. With no
// storage configured, a null store is returned.
func NewStore(conf *Conf) Store {
	if conf.FileRootPath != "" {
		log.Info().Msgf("using file lexicon cache (path: %s)", conf.FileRootPath)
		return NewFile(conf)

	} else if conf.RedisAddr != "" {
		log.Info().Msgf("using redis lexicon cache (addr: %s, db: %d)", conf.RedisAddr, conf.RedisDB)
		return NewRedis(conf)
	}
	log.Info().Msg("using NULL lexicon cache (path not specified)")
	return NewNull()
}
