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

// Package lexicon provides access to a morphological lexicon
// (BÍN - the Database of Icelandic Morphology) which enumerates
// dictionary entries and inflected word forms.
package lexicon

import (
	"context"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
)

// Entry is a single dictionary entry (a lemma within a word class).
type Entry struct {
	// Stem is the canonical form; compounds may contain a hyphen
	// separating the modifier from the head (e.g. 'rauð-dvergur').
	Stem      string
	ID        int
	WordClass string
	Domain    string
}

// IsCompound tells whether the canonical form is a hyphenated compound.
func (e Entry) IsCompound() bool {
	return strings.Contains(e.Stem, "-")
}

// Form is an inflected word form of an entry.
type Form struct {
	Entry
	WordForm string

	// Inflection is the lexicon's inflection descriptor,
	// e.g. NFET, ÞGFFTgr, EFET2
	Inflection string
}

// IsSecondary tells whether the form is an extra, idiosyncratic
// variant (marked with 2 or 3 in the descriptor).
func (f Form) IsSecondary() bool {
	return strings.ContainsAny(f.Inflection, "23")
}

func (f Form) Number() grammar.Number {
	if strings.Contains(f.Inflection, "FT") {
		return grammar.NumberPlural
	}
	return grammar.NumberSingular
}

func (f Form) IsDefinite() bool {
	return strings.Contains(f.Inflection, "gr")
}

// MatchesCase tells whether the form is inflected in the case c.
func (f Form) MatchesCase(c grammar.Case) bool {
	return strings.HasPrefix(f.Inflection, c.InflectionPrefix())
}

// Lexicon is the morphological lexicon collaborator.
type Lexicon interface {

	// LookupLemma returns all the entries whose canonical form matches
	// the lemma (a hyphenated compound stem matches also the lemma
	// written without the hyphen).
	LookupLemma(ctx context.Context, lemma string) ([]Entry, error)

	// LookupForms returns all inflected forms of the lemma within the word
	// class, inflected in the case c.
	LookupForms(ctx context.Context, lemma, wordClass string, c grammar.Case) ([]Form, error)

	Close() error
}

// NormalizeKey returns a lookup key of a stem, i.e. the stem without
// compound hyphens.
func NormalizeKey(stem string) string {
	return strings.ReplaceAll(stem, "-", "")
}

// FilterWordClass returns only the entries of the word class.
func FilterWordClass(entries []Entry, wordClass string) []Entry {
	ans := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.WordClass == wordClass {
			ans = append(ans, e)
		}
	}
	return ans
}
