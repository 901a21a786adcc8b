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

package cache

import (
	"context"
	"errors"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/rs/zerolog/log"
)

// Lexicon wraps a lexicon backend and consults the store first.
// Cache failures never fail a lookup, they are only logged.
type Lexicon struct {
	backend lexicon.Lexicon
	store   Store
}

func (cl *Lexicon) fromStore(ctx context.Context, q Query) (Entry, bool) {
	ans, err := cl.store.Get(ctx, q)
	if err == nil {
		return ans, true
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Str("lemma", q.Lemma).Msg("failed to read lexicon cache")
	}
	return Entry{}, false
}

func (cl *Lexicon) toStore(ctx context.Context, q Query, value Entry) {
	if err := cl.store.Set(ctx, q, value); err != nil {
		log.Warn().Err(err).Str("lemma", q.Lemma).Msg("failed to write lexicon cache")
	}
}

func (cl *Lexicon) LookupLemma(ctx context.Context, lemma string) ([]lexicon.Entry, error) {
	q := Query{Op: OpLookupLemma, Lemma: lemma}
	if cached, ok := cl.fromStore(ctx, q); ok {
		return cached.Entries, nil
	}
	ans, err := cl.backend.LookupLemma(ctx, lemma)
	if err != nil {
		return nil, err
	}
	cl.toStore(ctx, q, Entry{Entries: ans})
	return ans, nil
}

func (cl *Lexicon) LookupForms(ctx context.Context, lemma, wordClass string, c grammar.Case) ([]lexicon.Form, error) {
	q := Query{Op: OpLookupForms, Lemma: lemma, WordClass: wordClass, Case: c}
	if cached, ok := cl.fromStore(ctx, q); ok {
		return cached.Forms, nil
	}
	ans, err := cl.backend.LookupForms(ctx, lemma, wordClass, c)
	if err != nil {
		return nil, err
	}
	cl.toStore(ctx, q, Entry{Forms: ans})
	return ans, nil
}

func (cl *Lexicon) Close() error {
	return cl.backend.Close()
}

// Wrap decorates the backend with the store. For a null store,
// the backend itself is returned.
func Wrap(backend lexicon.Lexicon, store Store) lexicon.Lexicon {
	if _, ok := store.(*Null); ok {
		return backend
	}
	return &Lexicon{backend: backend, store: store}
}
