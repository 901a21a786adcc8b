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
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema creates the table the SQL backends expect (the layout
// used by older BÍN distributions). The expression index serves
// lookups of compounds written without the hyphen; MySQL supports
// it since 8.0.13.
const Schema = `
CREATE TABLE ord (
	stofn VARCHAR(80) NOT NULL,
	utg INTEGER NOT NULL,
	ordfl VARCHAR(10) NOT NULL,
	fl VARCHAR(10) NOT NULL,
	ordmynd VARCHAR(80) NOT NULL,
	beyging VARCHAR(25) NOT NULL
);
CREATE INDEX ord_stofn_idx ON ord (stofn);
CREATE INDEX ord_stofn_key_idx ON ord ((replace(stofn, '-', '')));
`

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"

	DfltTableName = "ord"
)

type DBConf struct {
	Host      string `json:"host"`
	Name      string `json:"name"`
	User      string `json:"user"`
	Password  string `json:"password"`
	TableName string `json:"tableName"`
}

func (conf *DBConf) Validate(context string) error {
	if conf.Name == "" {
		return fmt.Errorf("%s.name is missing/empty", context)

	} else if conf.Host == "" {
		return fmt.Errorf("%s.host is missing/empty", context)

	} else if conf.User == "" {
		return fmt.Errorf("%s.user is missing/empty", context)
	}
	if conf.TableName == "" {
		conf.TableName = DfltTableName
		log.Warn().Msgf("%s.tableName not specified, using default: %s", context, DfltTableName)
	}
	return nil
}

type Conf struct {

	// Backend is one of: file, postgres, mysql
	Backend  string `json:"backend"`
	FilePath string `json:"filePath"`
	DB       DBConf `json:"db"`
}

func (conf *Conf) Validate(context string) error {
	switch conf.Backend {
	case BackendFile:
		if conf.FilePath == "" {
			return fmt.Errorf("%s.filePath is missing/empty", context)
		}
	case BackendPostgres, BackendMySQL:
		return conf.DB.Validate(context + ".db")
	case "":
		return fmt.Errorf("%s.backend is missing/empty", context)
	default:
		return fmt.Errorf("%s.backend '%s' not supported", context, conf.Backend)
	}
	return nil
}

// New creates a lexicon based on the configured backend.
func New(ctx context.Context, conf *Conf) (Lexicon, error) {
	var ans Lexicon
	var err error
	switch conf.Backend {
	case BackendFile:
		ans, err = OpenFile(conf.FilePath)
	case BackendPostgres:
		ans, err = OpenPostgres(ctx, &conf.DB)
	case BackendMySQL:
		ans, err = OpenMySQL(&conf.DB)
	default:
		return nil, fmt.Errorf("unsupported lexicon backend '%s'", conf.Backend)
	}
	if err != nil {
		return nil, err
	}
	return ans, nil
}
