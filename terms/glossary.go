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

package terms

import (
	"context"
	"fmt"
	"io"

	"github.com/czcorpus/termsynth/english"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/rs/zerolog/log"
)

// Candidate is one possible English translation of a glossary noun,
// represented by case-insensitive whole-word patterns.
type Candidate struct {
	Singular *WordPattern
	Plural   *WordPattern
}

// Pattern returns the pattern matching the required number.
func (c Candidate) Pattern(plural bool) *WordPattern {
	if plural {
		return c.Plural
	}
	return c.Singular
}

// Glossary maps a source lemma to its English translation candidates.
type Glossary map[string][]Candidate

func (g Glossary) Candidates(lemma string) ([]Candidate, bool) {
	ans, ok := g[lemma]
	return ans, ok
}

// ReadGlossary reads a glossary file with lines in the format
//
//	lemma/category, translation_1[, translation_2, ...]
//
// Lines which are malformed or whose lemma is not found in the lexicon
// under the category are logged and skipped. Identical translations of
// the same lemma are registered only once.
func ReadGlossary(
	ctx context.Context,
	r io.Reader,
	lex lexicon.Lexicon,
	pluralizer english.Pluralizer,
) (Glossary, error) {
	ans := make(Glossary)
	err := scanEntryLines(r, func(lineNum int, line string) error {
		entry, ok := parseEntryLine(line)
		if !ok {
			log.Warn().Int("line", lineNum).Msgf("Malformed line in glossary file: '%s'", line)
			return nil
		}
		entries, err := lex.LookupLemma(ctx, entry.lemma)
		if err != nil {
			return fmt.Errorf("failed to read glossary: %w", err)
		}
		if len(lexicon.FilterWordClass(entries, entry.category)) == 0 {
			log.Warn().
				Int("line", lineNum).
				Msgf("Could not find glossary entry '%s/%s' in dictionary", entry.lemma, entry.category)
			return nil
		}
		seen := make(map[string]bool)
		candidates := make([]Candidate, 0, len(entry.translations))
		for _, tr := range entry.translations {
			if seen[tr] {
				continue
			}
			seen[tr] = true
			sg, err := NewWordPattern(tr)
			if err != nil {
				return fmt.Errorf("failed to read glossary: %w", err)
			}
			pl, err := NewWordPattern(pluralizer.Plural(tr))
			if err != nil {
				return fmt.Errorf("failed to read glossary: %w", err)
			}
			candidates = append(candidates, Candidate{Singular: sg, Plural: pl})
		}
		ans[entry.lemma] = candidates
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Int("numEntries", len(ans)).Msg("loaded glossary")
	return ans, nil
}
