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

package config

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/termsynth/collector"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/czcorpus/termsynth/lexicon/cache"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/pipeline"
	"github.com/rs/zerolog/log"
)

const (
	DfltMaxLines = collector.DfltMaxLines
	DfltCount    = pipeline.DfltCount
)

type Configuration struct {
	Logging      logging.LoggingConf `json:"logging"`
	Lexicon      lexicon.Conf        `json:"lexicon"`
	LexiconCache cache.Conf          `json:"lexiconCache"`

	// Parser is required only for template extraction
	Parser parser.Conf `json:"parser"`

	// MaxLines limits the number of corpus lines sent
	// to the parser during template extraction
	MaxLines int `json:"maxLines"`

	// Count is the number of sentence pairs generated per term
	Count int `json:"count"`

	// Seed for template sampling; zero means time based
	Seed int64 `json:"seed"`
}

func (c *Configuration) Validate() error {
	if err := c.Lexicon.Validate("lexicon"); err != nil {
		return err
	}
	if err := c.LexiconCache.Validate("lexiconCache"); err != nil {
		return err
	}
	if c.MaxLines < 0 {
		return fmt.Errorf("maxLines must be non-negative")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative")
	}
	return nil
}

// ValidateForExtraction validates also items needed
// only by the template extraction.
func (c *Configuration) ValidateForExtraction() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.Parser.Validate("parser")
}

func loadConfig(path string) (*Configuration, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &conf, nil
}

func LoadConfig(path string) *Configuration {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	conf, err := loadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}
