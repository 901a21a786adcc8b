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

package main

import (
	"testing"

	"github.com/czcorpus/termsynth/config"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestOverrideConfWithCmd(t *testing.T) {
	conf := &config.Configuration{
		Lexicon:  lexicon.Conf{Backend: lexicon.BackendPostgres},
		MaxLines: 200,
		Seed:     3,
	}
	overrideConfWithCmd(conf, &CmdOptions{LexiconPath: "/tmp/SHsnid.csv", Seed: 5})
	assert.Equal(t, lexicon.BackendFile, conf.Lexicon.Backend)
	assert.Equal(t, "/tmp/SHsnid.csv", conf.Lexicon.FilePath)
	assert.Equal(t, config.DfltCount, conf.Count)
	assert.Equal(t, 200, conf.MaxLines)
	assert.Equal(t, int64(5), conf.Seed)
}

func TestOverrideConfWithCmdDefaults(t *testing.T) {
	conf := &config.Configuration{Count: 4}
	overrideConfWithCmd(conf, &CmdOptions{MaxLines: 20})
	assert.Equal(t, 4, conf.Count)
	assert.Equal(t, 20, conf.MaxLines)
	assert.Equal(t, int64(0), conf.Seed)
}
