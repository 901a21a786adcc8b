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

// Package english provides English morphology needed on the target side.
package english

import (
	pluralize "github.com/gertd/go-pluralize"
)

type Pluralizer interface {
	Plural(word string) string
}

// RulePluralizer derives plurals using go-pluralize's rule set
// (including irregular and uncountable nouns).
type RulePluralizer struct {
	client *pluralize.Client
}

func (p *RulePluralizer) Plural(word string) string {
	return p.client.Plural(word)
}

func NewPluralizer() *RulePluralizer {
	return &RulePluralizer{client: pluralize.NewClient()}
}
