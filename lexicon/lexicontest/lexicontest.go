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

// Package lexicontest provides a small sample lexicon and a call
// counting wrapper for tests of packages depending on a lexicon.
package lexicontest

import (
	"context"
	"strings"
	"testing"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/czcorpus/termsynth/lexicon"
)

const SampleData = `
kanína;1001;kvk;alm;kanína;NFET
kanína;1001;kvk;alm;kanínan;NFETgr
kanína;1001;kvk;alm;kanínur;NFFT
kanína;1001;kvk;alm;kanínurnar;NFFTgr
kanína;1001;kvk;alm;kanínu;ÞFET
kanína;1001;kvk;alm;kanínuna;ÞFETgr
kanína;1001;kvk;alm;kanínur;ÞFFT
kanína;1001;kvk;alm;kanínu;ÞGFET
kanína;1001;kvk;alm;kanínunni;ÞGFETgr
kanína;1001;kvk;alm;kanínum;ÞGFFT
kanína;1001;kvk;alm;kanínu;EFET
kanína;1001;kvk;alm;kanína;EFFT
kanína;1001;kvk;alm;kanínna;EFFT2
rauð-dvergur;2001;kk;alm;rauðdvergur;NFET
dvergur;2002;kk;alm;dvergur;NFET
dvergur;2002;kk;alm;dvergurinn;NFETgr
dvergur;2002;kk;alm;dvergar;NFFT
dvergur;2002;kk;alm;dverg;ÞFET
dvergur;2002;kk;alm;dvergi;ÞGFET
dvergur;2002;kk;alm;dvergnum;ÞGFETgr
dvergur;2002;kk;alm;dvergs;EFET
hestur;3001;kk;alm;hestur;NFET
hestur;3001;kk;alm;hesturinn;NFETgr
hestur;3001;kk;alm;hestar;NFFT
hestur;3001;kk;alm;hest;ÞFET
hestur;3001;kk;alm;hestinn;ÞFETgr
hestur;3001;kk;alm;hesta;ÞFFT
hestur;3001;kk;alm;hesti;ÞGFET
hestur;3001;kk;alm;hests;EFET
bók;4001;kvk;alm;bók;NFET
bók;4001;kvk;alm;bækur;NFFT
bók;4001;kvk;alm;bók;ÞFET
bók;4001;kvk;alm;bókina;ÞFETgr
bók;4001;kvk;alm;bækur;ÞFFT
gull;5001;hk;alm;gull;NFET
gull;5001;hk;alm;gullið;NFETgr
gull;5001;hk;alm;gull;ÞFET
gull;5001;hk;alm;gulli;ÞGFET
gull;5001;hk;alm;gulls;EFET
kaffihús;7001;hk;alm;kaffihús;NFET
kaffihús;7001;hk;alm;kaffihúsið;NFETgr
kaffihús;7001;hk;alm;kaffihús;ÞFET
kaffihús;7001;hk;alm;kaffihúsið;ÞFETgr
kaffihús;7001;hk;alm;kaffihúsi;ÞGFET
kaffihús;7001;hk;alm;kaffihúsinu;ÞGFETgr
lán;6001;hk;alm;lán;NFET
lán;6002;hk;fjár;lán;NFET
`

// Counting wraps a lexicon and counts lookups.
type Counting struct {
	lexicon.Lexicon
	LemmaCalls int
	FormsCalls int
}

func (c *Counting) LookupLemma(ctx context.Context, lemma string) ([]lexicon.Entry, error) {
	c.LemmaCalls++
	return c.Lexicon.LookupLemma(ctx, lemma)
}

func (c *Counting) LookupForms(ctx context.Context, lemma, wordClass string, cs grammar.Case) ([]lexicon.Form, error) {
	c.FormsCalls++
	return c.Lexicon.LookupForms(ctx, lemma, wordClass, cs)
}

// NewSample returns the sample lexicon wrapped in a call counter.
func NewSample(t testing.TB) *Counting {
	lex, err := lexicon.ReadFile(strings.NewReader(SampleData))
	if err != nil {
		t.Fatalf("failed to load sample lexicon: %s", err)
	}
	return &Counting{Lexicon: lex}
}
