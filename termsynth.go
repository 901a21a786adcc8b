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
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/czcorpus/termsynth/config"
	"github.com/czcorpus/termsynth/english"
	"github.com/czcorpus/termsynth/lexicon"
	"github.com/czcorpus/termsynth/lexicon/cache"
	"github.com/czcorpus/termsynth/parser"
	"github.com/czcorpus/termsynth/pipeline"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type CmdOptions struct {
	InputPath    string
	OutputPath   string
	GlossaryPath string
	LexiconPath  string
	Count        int
	Seed         int64
	MaxLines     int
	LogPath      string
	LogLevel     string
	Verbose      bool
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func openLexicon(ctx context.Context, conf *config.Configuration) (lexicon.Lexicon, error) {
	backend, err := lexicon.New(ctx, &conf.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	log.Info().Str("backend", conf.Lexicon.Backend).Msg("opened lexicon")
	return cache.Wrap(backend, cache.NewStore(&conf.LexiconCache)), nil
}

// runPipeline opens all the files and the lexicon, runs the action and
// makes sure everything is closed before returning.
func runPipeline(ctx context.Context, action string, conf *config.Configuration, cmdOpts *CmdOptions) (err error) {
	if cmdOpts.GlossaryPath == "" {
		return fmt.Errorf("missing -glossary file")
	}
	glossary, err := os.Open(cmdOpts.GlossaryPath)
	if err != nil {
		return fmt.Errorf("unable to read glossary file: %w", err)
	}
	defer glossary.Close()

	infile, err := openInput(cmdOpts.InputPath)
	if err != nil {
		return fmt.Errorf("unable to read input file: %w", err)
	}
	defer infile.Close()

	outfile, err := openOutput(cmdOpts.OutputPath)
	if err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	defer func() {
		if cerr := outfile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to write output file: %w", cerr)
		}
	}()
	out := bufio.NewWriter(outfile)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("unable to write output file: %w", ferr)
		}
	}()

	lex, err := openLexicon(ctx, conf)
	if err != nil {
		return err
	}
	defer lex.Close()

	deps := pipeline.Deps{
		Lexicon:    lex,
		Pluralizer: english.NewPluralizer(),
	}
	switch action {
	case "template":
		deps.Parser = parser.NewClient(&conf.Parser)
		_, err = pipeline.GenerateTemplates(
			ctx, deps, bufio.NewReader(infile), out, glossary,
			pipeline.TemplateOptions{MaxLines: conf.MaxLines},
		)
	case "generate":
		_, err = pipeline.GeneratePairs(
			ctx, deps, bufio.NewReader(infile), out, glossary,
			pipeline.GenerateOptions{Count: conf.Count, Seed: conf.Seed},
		)
	default:
		err = fmt.Errorf("unknown action %s", action)
	}
	return err
}

func main() {
	cmdOpts := new(CmdOptions)
	flag.StringVar(&cmdOpts.InputPath, "input", "", "Input file: a corpus (template) or templates (generate); stdin if empty")
	flag.StringVar(&cmdOpts.OutputPath, "output", "", "Output file: templates (template) or sentence pairs (generate); stdout if empty")
	flag.StringVar(&cmdOpts.GlossaryPath, "glossary", "", "Glossary file (template) or rare terms file (generate)")
	flag.StringVar(&cmdOpts.LexiconPath, "lexicon", "", "A BÍN CSV file to be used as the lexicon (overrides the configured lexicon)")
	flag.IntVar(&cmdOpts.Count, "count", 0, fmt.Sprintf("Number of sentence pairs to generate per term (default %d)", config.DfltCount))
	flag.Int64Var(&cmdOpts.Seed, "seed", 0, "Random seed for template sampling (0 = time based)")
	flag.IntVar(&cmdOpts.MaxLines, "max-lines", 0, fmt.Sprintf("Max. number of corpus lines to parse (default %d)", config.DfltMaxLines))
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")
	flag.BoolVar(&cmdOpts.Verbose, "verbose", false, "Log details about processed items (same as -log-level debug)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"termsynth - synthetic Icelandic-English sentence pairs with rare terms"+
				"\n\nUsage:"+
				"\n\t%s [options] template [conf.json]"+
				"\n\t%s [options] generate [conf.json]"+
				"\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	action := flag.Arg(0)
	switch action {
	case "version":
		fmt.Printf("termsynth %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
		return
	case "template", "generate":
		conf := findAndLoadConfig(flag.Arg(1), cmdOpts)
		if action == "template" {
			if err := conf.ValidateForExtraction(); err != nil {
				log.Fatal().Err(err).Msg("invalid configuration")
			}
		}
		log.Info().
			Str("version", version).
			Str("buildDate", buildDate).
			Str("last commit", gitCommit).
			Str("action", action).
			Msg("Starting termsynth")
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		err := runPipeline(ctx, action, conf, cmdOpts)
		stop()
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to run action %s", action)
		}
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}
}
