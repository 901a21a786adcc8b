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

// Package templates implements sentence pair templates with a single
// inflectable noun placeholder and their gender-partitioned collection.
package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/terms"
)

// Placeholder marks the substitution slot in a loaded template.
// It is a Unicode private use code point so it never collides with
// natural text.
const Placeholder = "\uE000"

var (
	ErrNotSubstituted       = errors.New("target word was not substituted")
	ErrMultiplePlaceholders = errors.New("only a single placeholder {0:...} per sentence is supported")

	tagRegexp = regexp.MustCompile(`\{([0-9]+):([^}]+)\}`)
)

// SentencePair is a generated (or authentic) pair of sentences.
type SentencePair struct {
	Source string
	Target string
}

// WordMatcher locates the first occurrence of a target word
// (see terms.WordPattern).
type WordMatcher interface {
	FindStringIndex(s string) []int
}

// Inflector provides a term inflected on both sides.
type Inflector interface {
	Gender() grammar.Gender
	Inflect(ctx context.Context, v grammar.Variant) (terms.FormPair, error)
}

// Template is a sentence pair with the placeholder noun replaced by
// Placeholder on both sides. The signature describes the grammar the
// substituted noun must have on the source side.
type Template struct {
	source    string
	target    string
	sig       grammar.Signature
	sourceCap grammar.Capitalization
	targetCap grammar.Capitalization
}

func (t *Template) Gender() grammar.Gender {
	return t.sig.Gender
}

func (t *Template) Signature() grammar.Signature {
	return t.sig
}

func (t *Template) SourceCapitalization() grammar.Capitalization {
	return t.sourceCap
}

func (t *Template) TargetCapitalization() grammar.Capitalization {
	return t.targetCap
}

func placeholderTag(tag string) string {
	return "{0:" + tag + "}"
}

// SourceText returns the source side with the encoded placeholder tag.
func (t *Template) SourceText() string {
	return strings.Replace(
		t.source, Placeholder, placeholderTag(grammar.SourceTag(t.sig, t.sourceCap)), 1)
}

// TargetText returns the target side with the encoded placeholder tag.
func (t *Template) TargetText() string {
	return strings.Replace(
		t.target, Placeholder, placeholderTag(grammar.EnglishTag(t.sig.Number, t.targetCap)), 1)
}

// String returns the template in the template file format
// (english<TAB>source).
func (t *Template) String() string {
	return t.TargetText() + "\t" + t.SourceText()
}

// Write writes the template as a line of a template file.
func (t *Template) Write(w io.Writer) error {
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

// Substitute generates a new sentence pair by substituting the term into
// the template. If the term lacks the required form, the returned error
// wraps terms.ErrUnrealizableInflection.
func (t *Template) Substitute(ctx context.Context, term Inflector) (SentencePair, error) {
	forms, err := term.Inflect(ctx, t.sig.Variant())
	if err != nil {
		return SentencePair{}, err
	}
	src := grammar.ApplyCapitalization(forms.Source, t.sourceCap, grammar.Icelandic)
	tgt := grammar.ApplyCapitalization(forms.Target, t.targetCap, grammar.English)
	return SentencePair{
		Source: strings.Replace(t.source, Placeholder, src, 1),
		Target: strings.Replace(t.target, Placeholder, tgt, 1),
	}, nil
}

// Create creates a template from a parsed sentence and its English
// counterpart. The noun terminal is replaced on the source side, the
// first match of enPattern (which matched enWord) on the English side.
func Create(
	sent *parser.Sentence,
	terminal parser.Terminal,
	enSent string,
	enWord string,
	enPattern WordMatcher,
) (*Template, error) {
	sig, err := grammar.FromVariants(terminal.Variants)
	if err != nil {
		return nil, err
	}
	if terminal.Index < 0 || terminal.Index >= len(sent.Tokens) {
		return nil, fmt.Errorf(
			"terminal index %d out of range (%d tokens)", terminal.Index, len(sent.Tokens))
	}
	ans := &Template{
		sig:       sig,
		sourceCap: grammar.DetectCapitalization(sent.Tokens[terminal.Index].Text),
		targetCap: grammar.DetectCapitalization(enWord),
	}
	toks := make([]parser.Token, len(sent.Tokens))
	copy(toks, sent.Tokens)
	toks[terminal.Index] = parser.Token{Kind: parser.KindWord, Text: Placeholder}
	ans.source = parser.Detokenize(toks)

	loc := enPattern.FindStringIndex(enSent)
	if loc == nil {
		return nil, fmt.Errorf("%w: '%s' in '%s'", ErrNotSubstituted, enWord, enSent)
	}
	ans.target = enSent[:loc[0]] + Placeholder + enSent[loc[1]:]
	if ans.target == enSent {
		return nil, fmt.Errorf("%w: '%s' in '%s'", ErrNotSubstituted, enWord, enSent)
	}
	return ans, nil
}

// extractTag replaces the {0:TAG} placeholder with Placeholder and
// returns the TAG. A text without any tag is returned as is.
func extractTag(text string) (string, string, bool, error) {
	matches := tagRegexp.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, "", false, nil
	}
	if len(matches) > 1 {
		return "", "", false, fmt.Errorf("%w (found %d)", ErrMultiplePlaceholders, len(matches))
	}
	m := matches[0]
	if idx := text[m[2]:m[3]]; idx != "0" {
		return "", "", false, fmt.Errorf("%w (found index %s)", ErrMultiplePlaceholders, idx)
	}
	return text[:m[0]] + Placeholder + text[m[1]:], text[m[4]:m[5]], true, nil
}

// Load creates a template from its serialized form.
func Load(sourceText, targetText string) (*Template, error) {
	ans := new(Template)
	src, tag, found, err := extractTag(sourceText)
	if err != nil {
		return nil, err
	}
	ans.source = src
	if found {
		ans.sig, ans.sourceCap, err = grammar.ParseSourceTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", grammar.ErrInvalidTag, tag, err)
		}
	}
	tgt, tag, found, err := extractTag(targetText)
	if err != nil {
		return nil, err
	}
	ans.target = tgt
	if found {
		_, ans.targetCap = grammar.ParseEnglishTag(tag)
	}
	return ans, nil
}
