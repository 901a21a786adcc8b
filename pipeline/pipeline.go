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

// Package pipeline composes the building blocks into the two
// operations of the tool: template extraction and sentence pair
// generation.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/czcorpus/termsynth/collector"
	"github.com/czcorpus/termsynth/english"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/templates"
	"github.com/czcorpus/termsynth/terms"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DfltCount = 10
)

// Deps contains external collaborators of the pipelines.
// Parser is required only for template extraction.
type Deps struct {
	Lexicon    lexicon.Lexicon
	Parser     parser.Parser
	Pluralizer english.Pluralizer
}

type TemplateOptions struct {
	MaxLines int
}

type GenerateOptions struct {

	// Count is the number of templates sampled for each term
	Count int

	// Seed drives template sampling; zero means time based
	Seed int64
}

// GenerationStats summarizes a GeneratePairs run.
type GenerationStats struct {
	RunID           string  `json:"runId"`
	TemplatesLoaded int     `json:"templatesLoaded"`
	Terms           int     `json:"terms"`
	PairsWritten    int     `json:"pairsWritten"`
	ElapsedSecs     float64 `json:"elapsedSecs"`
}

// GenerateTemplates reads a glossary and a parallel corpus (in) and
// writes templates to out.
func GenerateTemplates(
	ctx context.Context,
	deps Deps,
	in io.Reader,
	out io.Writer,
	glossary io.Reader,
	opts TemplateOptions,
) (collector.Stats, error) {
	t0 := time.Now()
	runID := uuid.New().String()
	log.Info().Str("runId", runID).Msg("starting template extraction")
	gloss, err := terms.ReadGlossary(ctx, glossary, deps.Lexicon, deps.Pluralizer)
	if err != nil {
		return collector.Stats{}, fmt.Errorf("failed to generate templates: %w", err)
	}
	tc := collector.New(deps.Parser, gloss, opts.MaxLines)
	stats, err := tc.Run(ctx, in, out)
	if err != nil {
		return stats, fmt.Errorf("failed to generate templates: %w", err)
	}
	log.Info().
		Str("runId", runID).
		Any("stats", stats).
		Float64("elapsedSecs", time.Since(t0).Seconds()).
		Msg("template extraction finished")
	return stats, nil
}

// GeneratePairs loads templates (in) and rare terms and writes
// synthetic sentence pairs (english<TAB>source) to out. For each term,
// opts.Count distinct templates of the term's gender are used.
func GeneratePairs(
	ctx context.Context,
	deps Deps,
	in io.Reader,
	out io.Writer,
	termsFile io.Reader,
	opts GenerateOptions,
) (GenerationStats, error) {
	t0 := time.Now()
	stats := GenerationStats{RunID: uuid.New().String()}
	log.Info().Str("runId", stats.RunID).Msg("starting sentence pair generation")
	coll := templates.NewCollection(opts.Seed)
	numTpl, err := coll.Read(in)
	if err != nil {
		return stats, fmt.Errorf("failed to generate pairs: %w", err)
	}
	stats.TemplatesLoaded = numTpl
	log.Info().Str("runId", stats.RunID).Int("numTemplates", numTpl).Msg("loaded templates")

	termList, err := terms.ReadTerms(termsFile, deps.Pluralizer)
	if err != nil {
		return stats, fmt.Errorf("failed to generate pairs: %w", err)
	}
	for _, term := range termList {
		tp, err := terms.NewTermPair(ctx, deps.Lexicon, term.Lemma, term.Gender, term.English)
		if err != nil {
			return stats, fmt.Errorf("failed to generate pairs: %w", err)
		}
		pairs, err := coll.Generate(ctx, tp, opts.Count)
		if err != nil {
			return stats, fmt.Errorf("failed to generate pairs for %s: %w", term.Key(), err)
		}
		for _, pair := range pairs {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", pair.Target, pair.Source); err != nil {
				return stats, fmt.Errorf("failed to write sentence pair: %w", err)
			}
		}
		stats.Terms++
		stats.PairsWritten += len(pairs)
		log.Debug().
			Str("runId", stats.RunID).
			Str("term", term.Key()).
			Int("numPairs", len(pairs)).
			Msg("generated pairs for term")
	}
	stats.ElapsedSecs = time.Since(t0).Seconds()
	log.Info().Any("stats", stats).Msg("sentence pair generation finished")
	return stats, nil
}
