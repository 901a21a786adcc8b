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

package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/rs/zerolog/log"
)

type formsKey struct {
	stem      string
	wordClass string
}

// File is an in-memory lexicon loaded from a BÍN export
// in the "Sigrúnarsnið" CSV format:
//
//	stem;id;wordClass;domain;form;inflection
//
// Lines starting with '#' are ignored.
type File struct {
	entries map[string][]Entry
	forms   map[formsKey][]Form
}

func (lex *File) addEntry(key string, entry Entry) {
	for _, e := range lex.entries[key] {
		if e.ID == entry.ID && e.Stem == entry.Stem && e.WordClass == entry.WordClass {
			return
		}
	}
	lex.entries[key] = append(lex.entries[key], entry)
}

func (lex *File) add(form Form) {
	lex.addEntry(form.Stem, form.Entry)
	if form.IsCompound() {
		lex.addEntry(NormalizeKey(form.Stem), form.Entry)
	}
	key := formsKey{stem: form.Stem, wordClass: form.WordClass}
	lex.forms[key] = append(lex.forms[key], form)
}

func (lex *File) LookupLemma(ctx context.Context, lemma string) ([]Entry, error) {
	src := lex.entries[lemma]
	ans := make([]Entry, len(src))
	copy(ans, src)
	return ans, nil
}

func (lex *File) LookupForms(ctx context.Context, lemma, wordClass string, c grammar.Case) ([]Form, error) {
	ans := make([]Form, 0, 8)
	for _, f := range lex.forms[formsKey{stem: lemma, wordClass: wordClass}] {
		if f.MatchesCase(c) {
			ans = append(ans, f)
		}
	}
	return ans, nil
}

func (lex *File) Close() error {
	return nil
}

func parseLine(line string) (Form, error) {
	items := strings.Split(line, ";")
	if len(items) < 6 {
		return Form{}, fmt.Errorf("expected 6 fields, found %d", len(items))
	}
	id, err := strconv.Atoi(items[1])
	if err != nil {
		return Form{}, fmt.Errorf("invalid entry id: %w", err)
	}
	return Form{
		Entry: Entry{
			Stem:      items[0],
			ID:        id,
			WordClass: items[2],
			Domain:    items[3],
		},
		WordForm:   items[4],
		Inflection: items[5],
	}, nil
}

// ReadFile loads lexicon data from the reader. Malformed lines
// are logged and skipped.
func ReadFile(r io.Reader) (*File, error) {
	lex := &File{
		entries: make(map[string][]Entry),
		forms:   make(map[formsKey][]Form),
	}
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, err := parseLine(line)
		if err != nil {
			log.Warn().
				Err(err).
				Int("line", lineNum).
				Msg("skipping malformed lexicon line")
			continue
		}
		lex.add(form)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon data: %w", err)
	}
	return lex, nil
}

// OpenFile loads a lexicon file from the path.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon file: %w", err)
	}
	defer f.Close()
	ans, err := ReadFile(f)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", path).
		Int("numKeys", len(ans.entries)).
		Msg("loaded lexicon file")
	return ans, nil
}
