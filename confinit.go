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
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/termsynth/config"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/rs/zerolog/log"
)

var confSearchPaths = []string{
	"conf.json",
	"/usr/local/etc/termsynth/conf.json",
	"/usr/local/etc/termsynth.json",
}

// findAndLoadConfig loads the configuration either from the explicit
// path or from the first existing file of the search paths. With a lexicon
// file specified via the command line, a configuration file is optional.
func findAndLoadConfig(explicitPath string, cmdOpts *CmdOptions) *config.Configuration {
	var conf *config.Configuration
	confPath := explicitPath
	if explicitPath != "" {
		conf = config.LoadConfig(explicitPath)

	} else {
		for _, path := range confSearchPaths {
			isFile, err := fs.IsFile(path)
			if err != nil {
				log.Fatal().Msgf(
					"error when searching for a suitable configuration file (searched in: %s): %s",
					strings.Join(confSearchPaths, ", "),
					err,
				)
			}
			if isFile {
				conf = config.LoadConfig(path)
				confPath = path
				break
			}
		}
		if conf == nil && cmdOpts.LexiconPath != "" {
			conf = new(config.Configuration)

		} else if conf == nil {
			log.Fatal().Msgf(
				"cannot find any suitable configuration file (searched in: %s)",
				strings.Join(confSearchPaths, ", "),
			)
		}
	}
	if cmdOpts.Verbose {
		conf.Logging.Level = "debug"

	} else if cmdOpts.LogLevel != "" {
		conf.Logging.Level = logging.LogLevel(cmdOpts.LogLevel)

	} else if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	if cmdOpts.LogPath != "" {
		conf.Logging.Path = cmdOpts.LogPath
	}
	logging.SetupLogging(conf.Logging)
	if confPath != "" {
		log.Info().Msgf("loaded configuration from %s", confPath)

	} else {
		log.Info().Msg("no configuration file found, using command line options only")
	}
	log.Info().Msgf("using logging level '%s'", conf.Logging.Level)
	applyDefaults(conf)
	overrideConfWithCmd(conf, cmdOpts)
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return conf
}

// applyDefaults applies default values for optional config items
// not handled by overrideConfWithCmd (i.e. items not configurable
// via command line arguments).
func applyDefaults(conf *config.Configuration) {
	if conf.Logging.Path == "" {
		log.Warn().Msg("logging.path not specified, using stderr")
	}
}

func overrideConfWithCmd(origConf *config.Configuration, cmdConf *CmdOptions) {
	if cmdConf.LexiconPath != "" {
		origConf.Lexicon = lexicon.Conf{
			Backend:  lexicon.BackendFile,
			FilePath: cmdConf.LexiconPath,
		}
	}
	if cmdConf.Count != 0 {
		origConf.Count = cmdConf.Count

	} else if origConf.Count == 0 {
		log.Info().Msgf("count not specified, using default value %d", config.DfltCount)
		origConf.Count = config.DfltCount
	}
	if cmdConf.MaxLines != 0 {
		origConf.MaxLines = cmdConf.MaxLines

	} else if origConf.MaxLines == 0 {
		origConf.MaxLines = config.DfltMaxLines
	}
	if cmdConf.Seed != 0 {
		origConf.Seed = cmdConf.Seed
	}
}
