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

// Package terms handles the vocabulary side of the generator: rare term
// pairs which can be inflected on demand and the glossary of common
// nouns used to find placeholder candidates in authentic sentences.
package terms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/rs/zerolog/log"
)

var (
	ErrAmbiguousLemma         = errors.New("lemma is ambiguous in the lexicon")
	ErrUnrealizableInflection = errors.New("no inflected form available")
)

// EnglishPair contains the English singular and plural of a term.
type EnglishPair struct {
	Singular string
	Plural   string
}

// FormPair is a term inflected on both sides.
type FormPair struct {
	Source string
	Target string
}

// TermPair wraps a single rare lemma and its English counterpart,
// providing the lemma in inflectional forms required by templates.
type TermPair struct {
	lex     lexicon.Lexicon
	lemma   string
	gender  grammar.Gender
	prefix  string
	english EnglishPair

	// cache stores all the forms obtained from the lexicon so far.
	// It is never invalidated - a lemma's morphology does not change
	// during the term's lifetime.
	cache map[grammar.Variant]FormPair

	// loadedCases contains cases already queried in the lexicon
	// (a case may be loaded and still lack some variants, e.g. plural).
	loadedCases map[grammar.Case]bool
}

func (tp *TermPair) Lemma() string {
	return tp.lemma
}

func (tp *TermPair) Gender() grammar.Gender {
	return tp.gender
}

// Prefix returns the fixed (non-inflected) part of a compound term.
// For non-compound terms, an empty string is returned.
func (tp *TermPair) Prefix() string {
	return tp.prefix
}

func (tp *TermPair) String() string {
	return fmt.Sprintf("%s%s/%s", tp.prefix, tp.lemma, tp.gender)
}

// loadCase fetches all the forms of the term in the case c. One query
// covers all number and definiteness combinations of the case.
func (tp *TermPair) loadCase(ctx context.Context, c grammar.Case) error {
	forms, err := tp.lex.LookupForms(ctx, tp.lemma, string(tp.gender), c)
	if err != nil {
		return fmt.Errorf("failed to inflect %s: %w", tp, err)
	}
	for _, form := range forms {
		if form.IsSecondary() {
			continue
		}
		v := grammar.Variant{
			Case:     c,
			Number:   form.Number(),
			Definite: form.IsDefinite(),
		}
		enForm := tp.english.Singular
		if v.Number == grammar.NumberPlural {
			enForm = tp.english.Plural
		}
		tp.cache[v] = FormPair{Source: tp.prefix + form.WordForm, Target: enForm}
	}
	tp.loadedCases[c] = true
	log.Debug().
		Str("term", tp.String()).
		Str("case", string(c)).
		Int("numForms", len(forms)).
		Msg("loaded term forms")
	return nil
}

// Inflect returns the term pair inflected according to the variant.
// If the term has no such form (typically a plural of a singular-only
// noun), ErrUnrealizableInflection is returned.
func (tp *TermPair) Inflect(ctx context.Context, v grammar.Variant) (FormPair, error) {
	if ans, ok := tp.cache[v]; ok {
		return ans, nil
	}
	if !tp.loadedCases[v.Case] {
		if err := tp.loadCase(ctx, v.Case); err != nil {
			return FormPair{}, err
		}
		if ans, ok := tp.cache[v]; ok {
			return ans, nil
		}
	}
	return FormPair{}, fmt.Errorf("%w: %s (%s)", ErrUnrealizableInflection, tp, v)
}

// NewTermPair creates a term pair for the lemma which must resolve
// to exactly one lexicon entry within the gender. If the entry is
// a hyphenated compound (and the lemma is written without the hyphen),
// only the head is inflected and the modifier is kept as a prefix.
func NewTermPair(
	ctx context.Context,
	lex lexicon.Lexicon,
	lemma string,
	gender grammar.Gender,
	english EnglishPair,
) (*TermPair, error) {
	entries, err := lex.LookupLemma(ctx, lemma)
	if err != nil {
		return nil, fmt.Errorf("failed to create term pair %s/%s: %w", lemma, gender, err)
	}
	entries = lexicon.FilterWordClass(entries, string(gender))
	if len(entries) != 1 {
		return nil, fmt.Errorf(
			"%w: '%s/%s' (found %d entries)", ErrAmbiguousLemma, lemma, gender, len(entries))
	}
	ans := &TermPair{
		lex:         lex,
		lemma:       lemma,
		gender:      gender,
		english:     english,
		cache:       make(map[grammar.Variant]FormPair),
		loadedCases: make(map[grammar.Case]bool),
	}
	stem := entries[0].Stem
	if strings.Contains(stem, "-") && !strings.Contains(lemma, "-") {
		i := strings.LastIndex(stem, "-")
		ans.prefix, ans.lemma = stem[:i], stem[i+1:]
	}
	return ans, nil
}
