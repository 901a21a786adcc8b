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
	"strings"
)

// Capitalization describes how a placeholder's original word was cased.
// CapAll implies a capitalized first letter too.
type Capitalization int

const (
	CapNone Capitalization = iota
	CapFirst
	CapAll
)

func (c Capitalization) FirstCap() bool {
	return c == CapFirst || c == CapAll
}

func (c Capitalization) AllCaps() bool {
	return c == CapAll
}

func (c Capitalization) tagSuffix() string {
	switch c {
	case CapAll:
		return "_" + tagAllCaps
	case CapFirst:
		return "_" + tagFirstCap
	}
	return ""
}

// SourceTag encodes a source-side placeholder in the form
// gender_case_number[_gr][_caps|_cap].
func SourceTag(sig Signature, capz Capitalization) string {
	return sig.String() + capz.tagSuffix()
}

// EnglishTag encodes a target-side placeholder in the form sg|pl[_caps|_cap].
func EnglishTag(num Number, capz Capitalization) string {
	return num.EnglishTag() + capz.tagSuffix()
}

func capitalizationOf(items []string) Capitalization {
	for _, item := range items {
		if item == tagAllCaps {
			return CapAll
		}
	}
	for _, item := range items {
		if item == tagFirstCap {
			return CapFirst
		}
	}
	return CapNone
}

// ParseSourceTag decodes a tag produced by SourceTag.
func ParseSourceTag(tag string) (Signature, Capitalization, error) {
	items := strings.Split(tag, "_")
	sig, err := FromVariants(items)
	if err != nil {
		return Signature{}, CapNone, err
	}
	return sig, capitalizationOf(items), nil
}

// ParseEnglishTag decodes a tag produced by EnglishTag. The number
// part is informative only (the source side is authoritative), so
// a missing number is reported as an empty value, not an error.
func ParseEnglishTag(tag string) (Number, Capitalization) {
	items := strings.Split(tag, "_")
	var num Number
	for _, item := range items {
		switch item {
		case "sg":
			num = NumberSingular
		case "pl":
			num = NumberPlural
		}
	}
	return num, capitalizationOf(items)
}
