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
	"regexp"
	"unicode"
	"unicode/utf8"
)

// WordPattern matches a word (or a phrase) case-insensitively as a whole
// word. Unlike regexp's `\b`, word characters are all Unicode letters,
// marks and numbers plus '_', so 'café' neither misses 'the café.'
// nor matches inside 'cafés'.
type WordPattern struct {
	word string
	re   *regexp.Regexp
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

func (p *WordPattern) isDelimited(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// FindAllStringIndex returns up to n (all if n < 0) non-overlapping
// whole-word occurrences in s.
func (p *WordPattern) FindAllStringIndex(s string, n int) [][]int {
	var ans [][]int
	for start := 0; start < len(s) && (n < 0 || len(ans) < n); {
		loc := p.re.FindStringIndex(s[start:])
		if loc == nil || loc[0] == loc[1] {
			break
		}
		from, to := start+loc[0], start+loc[1]
		if p.isDelimited(s, from, to) {
			ans = append(ans, []int{from, to})
			start = to
			continue
		}
		// an occurrence starting inside the rejected one may still qualify
		_, size := utf8.DecodeRuneInString(s[from:])
		start = from + size
	}
	return ans
}

// FindStringIndex returns the first whole-word occurrence in s
// or nil if there is none.
func (p *WordPattern) FindStringIndex(s string) []int {
	if ans := p.FindAllStringIndex(s, 1); len(ans) > 0 {
		return ans[0]
	}
	return nil
}

func (p *WordPattern) MatchString(s string) bool {
	return p.FindStringIndex(s) != nil
}

func (p *WordPattern) String() string {
	return p.word
}

func NewWordPattern(word string) (*WordPattern, error) {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
	if err != nil {
		return nil, err
	}
	return &WordPattern{word: word, re: re}, nil
}
