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
	"io"

	"github.com/czcorpus/termsynth/english"
	"github.com/czcorpus/termsynth/grammar"
	"github.com/rs/zerolog/log"
)

// Term is an entry of a rare terms file.
type Term struct {
	Lemma   string
	Gender  grammar.Gender
	English EnglishPair
}

func (t Term) Key() string {
	return t.Lemma + "/" + string(t.Gender)
}

// ReadTerms reads a terms file with lines in the format
//
//	lemma/gender, english_singular[, english_plural]
//
// A missing plural is derived using the pluralizer. Malformed lines are
// logged and skipped. A repeated lemma/gender replaces the former
// translation but keeps the original position.
func ReadTerms(r io.Reader, pluralizer english.Pluralizer) ([]Term, error) {
	ans := make([]Term, 0, 100)
	positions := make(map[string]int)
	err := scanEntryLines(r, func(lineNum int, line string) error {
		entry, ok := parseEntryLine(line)
		if !ok {
			log.Warn().Int("line", lineNum).Msgf("Malformed line in terms file: '%s'", line)
			return nil
		}
		gender := grammar.Gender(entry.category)
		if err := gender.Validate(); err != nil {
			log.Warn().Err(err).Int("line", lineNum).Msgf("Malformed line in terms file: '%s'", line)
			return nil
		}
		term := Term{
			Lemma:  entry.lemma,
			Gender: gender,
			English: EnglishPair{
				Singular: entry.translations[0],
			},
		}
		if len(entry.translations) > 1 {
			term.English.Plural = entry.translations[1]

		} else {
			term.English.Plural = pluralizer.Plural(entry.translations[0])
		}
		if pos, ok := positions[term.Key()]; ok {
			ans[pos] = term

		} else {
			positions[term.Key()] = len(ans)
			ans = append(ans, term)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}
