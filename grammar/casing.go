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

package grammar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	Icelandic = language.Icelandic
	English   = language.English
)

// DetectCapitalization tells how a word from an authentic sentence is cased.
// A word is all-caps if it contains at least one cased letter and no
// lowercase one.
func DetectCapitalization(word string) Capitalization {
	var hasCased, hasLower bool
	for _, r := range word {
		if unicode.IsLower(r) {
			hasLower = true
			hasCased = true

		} else if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	if hasCased && !hasLower {
		return CapAll
	}
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) || unicode.IsTitle(first) {
		return CapFirst
	}
	return CapNone
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string, lang language.Tag) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(lang).String(s[:size]) + cases.Lower(lang).String(s[size:])
}

// ApplyCapitalization emulates the casing of a template's original word
// on a freshly inflected form.
func ApplyCapitalization(s string, capz Capitalization, lang language.Tag) string {
	switch capz {
	case CapAll:
		return cases.Upper(lang).String(s)
	case CapFirst:
		return Capitalize(s, lang)
	}
	return s
}
