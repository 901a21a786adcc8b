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

package parser

import (
	"strings"
)

var (
	// no space before these
	rightPunct = map[string]bool{
		".": true, ",": true, ";": true, ":": true, "!": true, "?": true,
		")": true, "]": true, "}": true, "»": true, "“": true, "”": true,
		"’": true, "%": true, "…": true, "...": true,
	}

	// no space after these
	leftPunct = map[string]bool{
		"(": true, "[": true, "{": true, "„": true, "«": true, "‚": true,
	}

	// no space on either side
	centerPunct = map[string]bool{
		"/": true,
	}
)

// Detokenize renders a token list back to text, joining words with
// single spaces and attaching punctuation to its neighbours.
func Detokenize(tokens []Token) string {
	var sb strings.Builder
	var needSpace bool
	for _, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		if needSpace && !rightPunct[tok.Text] && !centerPunct[tok.Text] {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
		needSpace = !leftPunct[tok.Text] && !centerPunct[tok.Text]
	}
	return sb.String()
}
