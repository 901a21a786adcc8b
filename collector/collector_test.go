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

package collector

import (
	"context"
	"strings"
	"testing"

	"github.com/czcorpus/termsynth/english"
	"github.com/czcorpus/termsynth/lexicon/lexicontest"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/parser/parsertest"
	"github.com/czcorpus/termsynth/terms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glossaryData = `
hestur/kk, horse
bók/kvk, book, volume
kanína/kvk, rabbit
kaffihús/hk, café
`

func loadGlossary(t *testing.T) terms.Glossary {
	g, err := terms.ReadGlossary(
		context.Background(),
		strings.NewReader(glossaryData),
		lexicontest.NewSample(t),
		english.NewPluralizer(),
	)
	require.NoError(t, err)
	return g
}

func sampleParser() *parsertest.Fake {
	return parsertest.NewFake().
		Add("Hesturinn er hér.",
			parsertest.Noun(0, "Hesturinn", "hestur", "kk", "nf", "et", "gr")).
		Add("Hesturinn sá annan hest.",
			parsertest.Noun(0, "Hesturinn", "hestur", "kk", "nf", "et", "gr"),
			parsertest.Noun(3, "hest", "hestur", "kk", "þf", "et")).
		Add("Ég las bók.",
			parsertest.Noun(2, "bók", "bók", "kvk", "þf", "et")).
		Add("Kanínur hlaupa.",
			parsertest.Noun(0, "Kanínur", "kanína", "kvk", "nf", "ft")).
		Add("Kötturinn sefur.",
			parsertest.Noun(0, "Kötturinn", "köttur", "kk", "nf", "et", "gr")).
		Add("Hesturinn hleypur.",
			parsertest.Noun(0, "Hesturinn", "hestur", "kk", "nf", "et", "gr")).
		Add("Ég sá hestinn og kanínuna.",
			parsertest.Noun(2, "hestinn", "hestur", "kk", "þf", "et", "gr"),
			parsertest.Noun(4, "kanínuna", "kanína", "kvk", "þf", "et", "gr")).
		Add("Ég fór á kaffihúsið.",
			parsertest.Noun(3, "kaffihúsið", "kaffihús", "hk", "þf", "et", "gr")).
		Add("Kaffihúsin nálægt kaffihúsinu eru opin.",
			parsertest.Noun(2, "kaffihúsinu", "kaffihús", "hk", "þgf", "et", "gr")).
		Add("Ég er hér.")
}

func collect(t *testing.T, enSent, srcSent string) *TemplateCollector {
	tc := New(sampleParser(), loadGlossary(t), 0)
	_, err := tc.Collect(context.Background(), enSent, srcSent)
	require.NoError(t, err)
	return tc
}

func TestCollectUniqueMatch(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "The horse is here.", "Hesturinn er hér.")
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "The {0:sg} is here.\t{0:kk_nf_et_gr_cap} er hér.", tpls[0].String())
	assert.Equal(t, 1, tc.Stats().TemplatesEmitted)
}

func TestCollectPlural(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "Rabbits run.", "Kanínur hlaupa.")
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "{0:pl_cap} run.\t{0:kvk_nf_ft_cap} hlaupa.", tpls[0].String())
}

func TestCollectTargetTwiceIsAmbiguous(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(
		context.Background(), "The horse saw another horse.", "Hesturinn sá annan hest.")
	require.NoError(t, err)
	assert.Empty(t, tpls)
	assert.Equal(t, 2, tc.Stats().Ambiguous)
}

func TestCollectTwoCandidatesAmbiguous(t *testing.T) {
	tc := collect(t, "I read a book, a volume.", "Ég las bók.")
	assert.Equal(t, 1, tc.Stats().Ambiguous)
	assert.Equal(t, 0, tc.Stats().TemplatesEmitted)
}

func TestCollectOneOfCandidates(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "I read a Volume.", "Ég las bók.")
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "I read a {0:sg_cap}.\tÉg las {0:kvk_þf_et}.", tpls[0].String())
}

func TestCollectNonASCIITranslation(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "I went to the café.", "Ég fór á kaffihúsið.")
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "I went to the {0:sg}.\tÉg fór á {0:hk_þf_et_gr}.", tpls[0].String())
}

func TestCollectNonASCIITranslationWholeWord(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(
		context.Background(),
		"The cafés near the café are open.",
		"Kaffihúsin nálægt kaffihúsinu eru opin.",
	)
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t,
		"The cafés near the {0:sg} are open.\tKaffihúsin nálægt {0:hk_þgf_et_gr} eru opin.",
		tpls[0].String(),
	)
	assert.Equal(t, 0, tc.Stats().Ambiguous)
}

func TestCollectNoMatch(t *testing.T) {
	tc := collect(t, "The horses run.", "Hesturinn hleypur.")
	assert.Equal(t, 1, tc.Stats().NoMatch)
	assert.Equal(t, 0, tc.Stats().TemplatesEmitted)
}

func TestCollectNotInGlossary(t *testing.T) {
	tc := collect(t, "The cat sleeps.", "Kötturinn sefur.")
	assert.Equal(t, 1, tc.Stats().NounsConsidered)
	assert.Equal(t, 0, tc.Stats().NoMatch)
	assert.Equal(t, 0, tc.Stats().TemplatesEmitted)
}

func TestCollectMultipleNouns(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	tpls, err := tc.Collect(
		context.Background(), "I saw the horse and the rabbit.", "Ég sá hestinn og kanínuna.")
	require.NoError(t, err)
	require.Len(t, tpls, 2)
	assert.Equal(t, "I saw the {0:sg} and the rabbit.\tÉg sá {0:kk_þf_et_gr} og kanínuna.", tpls[0].String())
	assert.Equal(t, "I saw the horse and the {0:sg}.\tÉg sá hestinn og {0:kvk_þf_et_gr}.", tpls[1].String())
}

func TestCollectSkipsMultiTokenNoun(t *testing.T) {
	p := parsertest.NewFake().Add(
		"Ráðherra kom.",
		parsertest.Noun(0, "fjármála- og efnahagsráðherra", "ráðherra", "kk", "nf", "et"),
	)
	tc := New(p, loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "The minister came.", "Ráðherra kom.")
	require.NoError(t, err)
	assert.Empty(t, tpls)
	assert.Equal(t, 0, tc.Stats().NounsConsidered)
}

func TestCollectSkipsNonNoun(t *testing.T) {
	p := parsertest.NewFake().Add(
		"Hestur hleypur.",
		parser.Terminal{Index: 1, Text: "hleypur", Lemma: "hlaupa", Category: "so", Variants: []string{"et", "p3"}},
	)
	tc := New(p, loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "A horse runs.", "Hestur hleypur.")
	require.NoError(t, err)
	assert.Empty(t, tpls)
}

func TestCollectIncompleteSignature(t *testing.T) {
	p := parsertest.NewFake().Add(
		"Hesturinn er hér.",
		parsertest.Noun(0, "Hesturinn", "hestur", "kk", "et", "gr"),
	)
	tc := New(p, loadGlossary(t), 0)
	tpls, err := tc.Collect(context.Background(), "The horse is here.", "Hesturinn er hér.")
	require.NoError(t, err)
	assert.Empty(t, tpls)
	assert.Equal(t, 1, tc.Stats().IncompleteSignature)
}

func TestCollectUnparsable(t *testing.T) {
	tc := collect(t, "Something odd.", "Óþáttanlegt.")
	assert.Equal(t, 1, tc.Stats().Unparsable)

	tc = collect(t, "I am here.", "Ég er hér.")
	assert.Equal(t, 1, tc.Stats().Unparsable)
	assert.Equal(t, 0, tc.Stats().LinesParsed)
}

func TestCollectParserFailure(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	_, err := tc.Collect(context.Background(), "Whatever.", parsertest.FailingText)
	assert.ErrorIs(t, err, parsertest.ErrService)
}

const corpus = `The horse is here.	Hesturinn er hér.

The horse saw another horse.	Hesturinn sá annan hest.
this line is malformed
Rabbits run.	Kanínur hlaupa.
Something odd.	Óþáttanlegt.
I read a Volume.	Ég las bók.
`

func TestRun(t *testing.T) {
	p := sampleParser()
	tc := New(p, loadGlossary(t), 0)
	var out strings.Builder
	stats, err := tc.Run(context.Background(), strings.NewReader(corpus), &out)
	require.NoError(t, err)
	assert.Equal(t,
		"The {0:sg} is here.\t{0:kk_nf_et_gr_cap} er hér.\n"+
			"{0:pl_cap} run.\t{0:kvk_nf_ft_cap} hlaupa.\n"+
			"I read a {0:sg_cap}.\tÉg las {0:kvk_þf_et}.\n",
		out.String(),
	)
	assert.Equal(t, 6, stats.LinesRead)
	assert.Equal(t, 1, stats.Malformed)
	assert.Equal(t, 4, stats.LinesParsed)
	assert.Equal(t, 1, stats.Unparsable)
	assert.Equal(t, 3, stats.TemplatesEmitted)
	assert.Equal(t, 5, p.Calls)
}

func TestRunMaxLines(t *testing.T) {
	p := sampleParser()
	tc := New(p, loadGlossary(t), 2)
	var out strings.Builder
	stats, err := tc.Run(context.Background(), strings.NewReader(corpus), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Calls)
	assert.Equal(t, 1, stats.TemplatesEmitted)
	assert.Equal(t, "The {0:sg} is here.\t{0:kk_nf_et_gr_cap} er hér.\n", out.String())
}

func TestRunParserFailure(t *testing.T) {
	tc := New(sampleParser(), loadGlossary(t), 0)
	var out strings.Builder
	_, err := tc.Run(
		context.Background(),
		strings.NewReader("The horse is here.\tHesturinn er hér.\nWhatever.\t"+parsertest.FailingText+"\n"),
		&out,
	)
	assert.ErrorIs(t, err, parsertest.ErrService)
	assert.Equal(t, "The {0:sg} is here.\t{0:kk_nf_et_gr_cap} er hér.\n", out.String())
}
