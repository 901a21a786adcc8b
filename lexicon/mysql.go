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
	"database/sql"
	"fmt"
	"time"

	"github.com/czcorpus/termsynth/grammar"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

type MySQL struct {
	db    *sql.DB
	table string
}

func (lex *MySQL) LookupLemma(ctx context.Context, lemma string) ([]Entry, error) {
	rows, err := lex.db.QueryContext(
		ctx,
		fmt.Sprintf(
			"SELECT stofn, utg, ordfl, fl FROM %s WHERE stofn = ? "+
				"UNION SELECT stofn, utg, ordfl, fl FROM %s WHERE replace(stofn, '-', '') = ?",
			lex.table, lex.table),
		lemma, lemma,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up lemma %s: %w", lemma, err)
	}
	defer rows.Close()
	ans := make([]Entry, 0, 4)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Stem, &e.ID, &e.WordClass, &e.Domain); err != nil {
			return nil, fmt.Errorf("failed to look up lemma %s: %w", lemma, err)
		}
		ans = append(ans, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to look up lemma %s: %w", lemma, err)
	}
	return ans, nil
}

func (lex *MySQL) LookupForms(ctx context.Context, lemma, wordClass string, c grammar.Case) ([]Form, error) {
	rows, err := lex.db.QueryContext(
		ctx,
		fmt.Sprintf(
			"SELECT stofn, utg, ordfl, fl, ordmynd, beyging FROM %s "+
				"WHERE stofn = ? AND ordfl = ? AND beyging LIKE ?", lex.table),
		lemma, wordClass, c.InflectionPrefix()+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up forms of %s: %w", lemma, err)
	}
	defer rows.Close()
	ans := make([]Form, 0, 8)
	for rows.Next() {
		var f Form
		if err := rows.Scan(&f.Stem, &f.ID, &f.WordClass, &f.Domain, &f.WordForm, &f.Inflection); err != nil {
			return nil, fmt.Errorf("failed to look up forms of %s: %w", lemma, err)
		}
		ans = append(ans, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to look up forms of %s: %w", lemma, err)
	}
	return ans, nil
}

func (lex *MySQL) Close() error {
	return lex.db.Close()
}

func OpenMySQL(conf *DBConf) (*MySQL, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"autocommit": "true", "charset": "utf8mb4"}
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect lexicon database: %w", err)
	}
	log.Info().
		Str("host", conf.Host).
		Str("name", conf.Name).
		Str("user", conf.User).
		Msg("Connected to MySQL lexicon database")
	return &MySQL{db: db, table: conf.TableName}, nil
}
