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

// Package grammar describes the grammatical features a noun placeholder
// requires (gender, case, number, definiteness) and the tag grammar
// used to persist them in template files.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncompleteSignature = errors.New("incomplete grammatical signature")
	ErrInvalidTag          = errors.New("invalid placeholder tag")
)

type Gender string

const (
	GenderMasculine Gender = "kk"
	GenderFeminine  Gender = "kvk"
	GenderNeuter    Gender = "hk"
)

func (g Gender) Validate() error {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return nil
	}
	return fmt.Errorf("unknown gender '%s'", string(g))
}

type Case string

const (
	CaseNominative Case = "nf"
	CaseAccusative Case = "þf"
	CaseDative     Case = "þgf"
	CaseGenitive   Case = "ef"
)

// InflectionPrefix returns the prefix the case has in the lexicon's
// inflection descriptors (e.g. NFETgr, ÞGFFT).
func (c Case) InflectionPrefix() string {
	return strings.ToUpper(string(c))
}

type Number string

const (
	NumberSingular Number = "et"
	NumberPlural   Number = "ft"
)

// EnglishTag returns the English-side placeholder label for the number.
func (n Number) EnglishTag() string {
	if n == NumberPlural {
		return "pl"
	}
	return "sg"
}

const (
	tagDefinite = "gr"
	tagFirstCap = "cap"
	tagAllCaps  = "caps"
)

var (
	genders = map[string]Gender{
		string(GenderMasculine): GenderMasculine,
		string(GenderFeminine):  GenderFeminine,
		string(GenderNeuter):    GenderNeuter,
	}
	caseValues = map[string]Case{
		string(CaseNominative): CaseNominative,
		string(CaseAccusative): CaseAccusative,
		string(CaseDative):     CaseDative,
		string(CaseGenitive):   CaseGenitive,
	}
	numbers = map[string]Number{
		string(NumberSingular): NumberSingular,
		string(NumberPlural):   NumberPlural,
	}
)

// Variant is the gender-independent part of a signature. It is all
// a term needs to know to pick the right inflected form.
type Variant struct {
	Case     Case
	Number   Number
	Definite bool
}

func (v Variant) String() string {
	ans := string(v.Case) + "_" + string(v.Number)
	if v.Definite {
		ans += "_" + tagDefinite
	}
	return ans
}

// Signature is the full grammatical description of a placeholder.
type Signature struct {
	Gender   Gender
	Case     Case
	Number   Number
	Definite bool
}

func (s Signature) Variant() Variant {
	return Variant{Case: s.Case, Number: s.Number, Definite: s.Definite}
}

func (s Signature) String() string {
	return string(s.Gender) + "_" + s.Variant().String()
}

// FromVariants picks the recognized features out of a terminal's
// variant set. Unknown items (e.g. pronoun person) are ignored but
// exactly one gender, case and number must be present.
func FromVariants(variants []string) (Signature, error) {
	var ans Signature
	foundGenders := make(map[Gender]bool)
	foundCases := make(map[Case]bool)
	foundNumbers := make(map[Number]bool)
	for _, v := range variants {
		if g, ok := genders[v]; ok {
			ans.Gender = g
			foundGenders[g] = true

		} else if c, ok := caseValues[v]; ok {
			ans.Case = c
			foundCases[c] = true

		} else if n, ok := numbers[v]; ok {
			ans.Number = n
			foundNumbers[n] = true

		} else if v == tagDefinite {
			ans.Definite = true
		}
	}
	if len(foundGenders) != 1 || len(foundCases) != 1 || len(foundNumbers) != 1 {
		return Signature{}, fmt.Errorf(
			"%w: [%s] (genders: %d, cases: %d, numbers: %d)",
			ErrIncompleteSignature, strings.Join(variants, ", "),
			len(foundGenders), len(foundCases), len(foundNumbers),
		)
	}
	return ans, nil
}
