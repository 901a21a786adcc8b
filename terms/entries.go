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

package terms

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// entryLine is a parsed line of a glossary or terms file:
//
//	lemma/category, translation_1[, translation_2, ...]
type entryLine struct {
	lemma        string
	category     string
	translations []string
}

func parseEntryLine(line string) (entryLine, bool) {
	items := strings.Split(line, ",")
	if len(items) < 2 {
		return entryLine{}, false
	}
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	head := strings.Split(items[0], "/")
	if len(head) != 2 || head[0] == "" || head[1] == "" {
		return entryLine{}, false
	}
	ans := entryLine{lemma: head[0], category: head[1]}
	for _, tr := range items[1:] {
		if tr != "" {
			ans.translations = append(ans.translations, tr)
		}
	}
	if len(ans.translations) == 0 {
		return entryLine{}, false
	}
	return ans, true
}

// scanEntryLines calls fn for each non-empty, non-comment line.
func scanEntryLines(r io.Reader, fn func(lineNum int, line string) error) error {
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	return nil
}
