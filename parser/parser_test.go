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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(items ...string) []Token {
	ans := make([]Token, len(items))
	for i, item := range items {
		ans[i] = Token{Kind: KindWord, Text: item}
	}
	return ans
}

func TestDetokenizePunctuation(t *testing.T) {
	toks := words("Ég", "sá", "kanínuna", ",", "og", "hún", "hljóp", "(", "hratt", ")", ".")
	assert.Equal(t, "Ég sá kanínuna, og hún hljóp (hratt).", Detokenize(toks))
}

func TestDetokenizeQuotesAndSlash(t *testing.T) {
	toks := words("Hann", "sagði", "„", "halló", "“", "og/eða", "já", "/", "nei")
	assert.Equal(t, "Hann sagði „halló“ og/eða já/nei", Detokenize(toks))
}

func TestDetokenizeSkipsEmpty(t *testing.T) {
	assert.Equal(t, "a b", Detokenize(words("a", "", "b")))
	assert.Equal(t, "", Detokenize(nil))
}

func TestTerminalProps(t *testing.T) {
	term := Terminal{Text: "fjármála- og efnahagsráðherra", Category: "no", Variants: []string{"kk", "ft"}}
	assert.True(t, term.IsNoun())
	assert.False(t, term.IsSingleToken())
	assert.True(t, term.HasVariant("ft"))
	assert.False(t, term.HasVariant("gr"))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	conf := &Conf{ServiceURL: srv.URL}
	require.NoError(t, conf.Validate("parser"))
	return NewClient(conf)
}

func TestClientParse(t *testing.T) {
	var received string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.Write([]byte(`{"sentences":[{"tokens":[{"kind":"WORD","text":"Kanínan"},{"kind":"PUNCTUATION","text":"."}],` +
			`"terminals":[{"index":0,"text":"Kanínan","lemma":"kanína","category":"no","variants":["kvk","nf","et","gr"]}]}]}`))
	})
	sent, err := client.Parse(context.Background(), "Kanínan.")
	require.NoError(t, err)
	assert.Equal(t, `{"text":"Kanínan."}`, received)
	require.Len(t, sent.Tokens, 2)
	require.Len(t, sent.Terminals, 1)
	assert.Equal(t, "kanína", sent.Terminals[0].Lemma)
	assert.Equal(t, []string{"kvk", "nf", "et", "gr"}, sent.Terminals[0].Variants)
}

func TestClientUnparsable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sentences":[{"tokens":[{"kind":"WORD","text":"xyz"}],"terminals":null}]}`))
	})
	_, err := client.Parse(context.Background(), "xyz")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestClientServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := client.Parse(context.Background(), "xyz")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnparsable)
}
