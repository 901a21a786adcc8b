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
	"context"
	"strings"
	"testing"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `# a fragment of BÍN
kanína;1001;kvk;alm;kanína;NFET
kanína;1001;kvk;alm;kanínan;NFETgr
kanína;1001;kvk;alm;kanínur;NFFT
kanína;1001;kvk;alm;kanínurnar;NFFTgr
kanína;1001;kvk;alm;kanínu;ÞFET
kanína;1001;kvk;alm;kanínu;ÞGFET
rauð-dvergur;2002;kk;alm;rauðdvergur;NFET
dvergur;2003;kk;alm;dvergur;NFET
dvergur;2003;kk;alm;dvergi;ÞGFET
dvergur;2003;kk;alm;dvergnum;ÞGFETgr
malformed line
`

func loadTestLexicon(t *testing.T) *File {
	lex, err := ReadFile(strings.NewReader(testData))
	require.NoError(t, err)
	return lex
}

func TestLookupLemma(t *testing.T) {
	lex := loadTestLexicon(t)
	entries, err := lex.LookupLemma(context.Background(), "kanína")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Stem: "kanína", ID: 1001, WordClass: "kvk", Domain: "alm"}, entries[0])
}

func TestLookupLemmaCompoundWithoutHyphen(t *testing.T) {
	lex := loadTestLexicon(t)
	entries, err := lex.LookupLemma(context.Background(), "rauðdvergur")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rauð-dvergur", entries[0].Stem)
	assert.True(t, entries[0].IsCompound())
}

func TestLookupLemmaUnknown(t *testing.T) {
	lex := loadTestLexicon(t)
	entries, err := lex.LookupLemma(context.Background(), "hestur")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLookupFormsByCase(t *testing.T) {
	lex := loadTestLexicon(t)
	forms, err := lex.LookupForms(context.Background(), "kanína", "kvk", grammar.CaseNominative)
	require.NoError(t, err)
	require.Len(t, forms, 4)
	assert.Equal(t, "kanínurnar", forms[3].WordForm)
	assert.Equal(t, grammar.NumberPlural, forms[3].Number())
	assert.True(t, forms[3].IsDefinite())

	forms, err = lex.LookupForms(context.Background(), "kanína", "kvk", grammar.CaseAccusative)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "ÞFET", forms[0].Inflection)
}

func TestLookupFormsWrongWordClass(t *testing.T) {
	lex := loadTestLexicon(t)
	forms, err := lex.LookupForms(context.Background(), "kanína", "kk", grammar.CaseNominative)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestFormFlags(t *testing.T) {
	f := Form{Inflection: "EFET2"}
	assert.True(t, f.IsSecondary())
	assert.False(t, f.IsDefinite())
	assert.Equal(t, grammar.NumberSingular, f.Number())
	assert.True(t, f.MatchesCase(grammar.CaseGenitive))
	assert.False(t, f.MatchesCase(grammar.CaseNominative))
}

func TestFilterWordClass(t *testing.T) {
	entries := []Entry{{Stem: "a", WordClass: "kk"}, {Stem: "a", WordClass: "so"}}
	assert.Equal(t, []Entry{{Stem: "a", WordClass: "kk"}}, FilterWordClass(entries, "kk"))
}

func TestConfValidate(t *testing.T) {
	conf := Conf{Backend: BackendPostgres, DB: DBConf{Host: "localhost", Name: "bin", User: "bin"}}
	require.NoError(t, conf.Validate("lexicon"))
	assert.Equal(t, DfltTableName, conf.DB.TableName)

	conf = Conf{Backend: BackendFile}
	assert.Error(t, conf.Validate("lexicon"))

	conf = Conf{Backend: "sqlite"}
	assert.Error(t, conf.Validate("lexicon"))
}

func TestPostgresConnString(t *testing.T) {
	s := postgresConnString(&DBConf{Host: "db:5432", Name: "bin", User: "u", Password: "p@ss"})
	assert.Equal(t, "postgres://u:p%40ss@db:5432/bin", s)
}
