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

// Package parsertest provides an in-memory parser for tests of
// packages depending on a sentence parser.
package parsertest

import (
	"context"
	"errors"
	"strings"

	"github.com/czcorpus/termsynth/parser"
)

// FailingText makes Fake return a non-recoverable error.
const FailingText = "__fail__"

var ErrService = errors.New("parser service unavailable")

// Fake returns preregistered parses. Texts without a registered
// parse are reported as unparsable.
type Fake struct {
	sentences map[string]*parser.Sentence
	Calls     int
}

func (f *Fake) Parse(ctx context.Context, text string) (*parser.Sentence, error) {
	f.Calls++
	if text == FailingText {
		return nil, ErrService
	}
	sent, ok := f.sentences[text]
	if !ok {
		return nil, parser.ErrUnparsable
	}
	return sent, nil
}

// Add registers a parse of the text. Tokens are derived from the text
// (see Tokenize), terminals are taken as they are.
func (f *Fake) Add(text string, terminals ...parser.Terminal) *Fake {
	f.sentences[text] = &parser.Sentence{
		Tokens:    Tokenize(text),
		Terminals: terminals,
	}
	return f
}

// Tokenize splits the text by whitespace and separates trailing
// punctuation (.,!?) into standalone tokens.
func Tokenize(text string) []parser.Token {
	var ans []parser.Token
	for _, word := range strings.Fields(text) {
		var punct []parser.Token
		for len(word) > 0 && strings.ContainsAny(word[len(word)-1:], ".,!?") {
			punct = append(
				[]parser.Token{{Kind: parser.KindPunctuation, Text: word[len(word)-1:]}}, punct...)
			word = word[:len(word)-1]
		}
		if word != "" {
			ans = append(ans, parser.Token{Kind: parser.KindWord, Text: word})
		}
		ans = append(ans, punct...)
	}
	return ans
}

// Noun creates a noun terminal.
func Noun(index int, text, lemma string, variants ...string) parser.Terminal {
	return parser.Terminal{
		Index:    index,
		Text:     text,
		Lemma:    lemma,
		Category: parser.CategoryNoun,
		Variants: variants,
	}
}

func NewFake() *Fake {
	return &Fake{sentences: make(map[string]*parser.Sentence)}
}
