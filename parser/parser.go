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

// Package parser defines the sentence parser collaborator used
// when extracting templates: a parsed sentence exposes its tokens
// and the terminals of the parse tree.
package parser

import (
	"context"
	"errors"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

var ErrUnparsable = errors.New("sentence cannot be parsed")

const (
	KindWord        = "WORD"
	KindPunctuation = "PUNCTUATION"

	CategoryNoun = "no"
)

type Token struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Terminal is a leaf of a parse tree.
type Terminal struct {

	// Index points to the sentence's token list
	Index    int      `json:"index"`
	Text     string   `json:"text"`
	Lemma    string   `json:"lemma"`
	Category string   `json:"category"`
	Variants []string `json:"variants"`
}

func (t Terminal) IsNoun() bool {
	return t.Category == CategoryNoun
}

// IsSingleToken tells whether the terminal's text is just one word
// (i.e. not something like 'fjármála- og efnahagsráðherra').
func (t Terminal) IsSingleToken() bool {
	return !strings.Contains(t.Text, " ")
}

func (t Terminal) HasVariant(v string) bool {
	return collections.SliceContains(t.Variants, v)
}

type Sentence struct {
	Tokens    []Token    `json:"tokens"`
	Terminals []Terminal `json:"terminals"`
}

// Parser turns a raw source-language sentence into a parsed Sentence.
// Sentences which do not parse must be reported via ErrUnparsable.
type Parser interface {
	Parse(ctx context.Context, text string) (*Sentence, error)
}
