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

package cache

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
)

// File stores cached lookups as gob files in a two-level
// directory structure under conf.FileRootPath.
type File struct {
	conf *Conf
}

func (fc *File) createItemPath(q Query) string {
	bs := fmt.Sprintf("%x.gob", q.ID())
	return path.Join(fc.conf.FileRootPath, bs[0:1], bs)
}

func (fc *File) Get(ctx context.Context, q Query) (Entry, error) {
	filePath := fc.createItemPath(q)
	isFile, err := fs.IsFile(filePath)
	if err != nil {
		return Entry{}, err
	}
	if !isFile {
		return Entry{}, ErrCacheMiss
	}
	mtime, err := fs.GetFileMtime(filePath)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to obtain file mtime: %w", err)
	}
	if time.Since(mtime) > time.Duration(fc.conf.TTLSecs)*time.Second {
		if err := fs.DeleteFile(filePath); err != nil {
			return Entry{}, err
		}
		return Entry{}, ErrCacheMiss
	}
	fr, err := os.Open(filePath)
	if err != nil {
		return Entry{}, err
	}
	defer fr.Close()
	var ans Entry
	if err := gob.NewDecoder(fr).Decode(&ans); err != nil {
		return Entry{}, fmt.Errorf("lexicon cache access error: %w", err)
	}
	return ans, nil
}

func (fc *File) Set(ctx context.Context, q Query, value Entry) error {
	targetPath := fc.createItemPath(q)
	if err := os.MkdirAll(path.Dir(targetPath), os.ModePerm); err != nil {
		return err
	}
	fw, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer fw.Close()
	return gob.NewEncoder(fw).Encode(&value)
}

func NewFile(conf *Conf) *File {
	return &File{conf: conf}
}
