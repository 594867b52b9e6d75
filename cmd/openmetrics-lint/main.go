// Copyright 2013 The Prometheus Authors
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

// Command openmetrics-lint parses an OpenMetrics exposition file and
// either reports whether it is valid, re-serializes it canonically, or
// renders it as HTML.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/prometheus/openmetrics-parser/expfmt"
	"github.com/prometheus/openmetrics-parser/internal/promtext_log"
)

var (
	app = kingpin.New("openmetrics-lint", "Parse and validate OpenMetrics text exposition files.")

	verbose = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	lintCmd  = app.Command("lint", "Parse a file and report whether it is valid.")
	lintFile = lintCmd.Arg("file", "Exposition file to lint.").Required().ExistingFile()

	printCmd  = app.Command("print", "Parse a file and re-emit it in canonical form.")
	printFile = printCmd.Arg("file", "Exposition file to print.").Required().ExistingFile()

	renderCmd  = app.Command("render", "Parse a file and render it as HTML.")
	renderFile = renderCmd.Arg("file", "Exposition file to render.").Required().ExistingFile()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := promtext_log.New(os.Stderr, level)

	var err error
	switch cmd {
	case lintCmd.FullCommand():
		err = runLint(logger, *lintFile)
	case printCmd.FullCommand():
		err = runPrint(logger, *printFile)
	case renderCmd.FullCommand():
		err = runRender(logger, *renderFile)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLint(logger promtext_log.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := expfmt.Parse(data); err != nil {
		return formatFileError(path, err)
	}
	logger.Info("exposition is valid", "file", path)
	return nil
}

func runPrint(logger promtext_log.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	exp, err := expfmt.Parse(data)
	if err != nil {
		return formatFileError(path, err)
	}
	logger.Debug("parsed exposition", "file", path, "families", len(exp.Families))
	return expfmt.Emit(os.Stdout, exp)
}

func runRender(logger promtext_log.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	exp, err := expfmt.Parse(data)
	if err != nil {
		return formatFileError(path, err)
	}
	logger.Debug("parsed exposition", "file", path, "families", len(exp.Families))
	return expfmt.RenderHTML(os.Stdout, exp)
}

func formatFileError(path string, err error) error {
	if pe, ok := err.(*expfmt.ParseError); ok && pe.Line > 0 {
		return fmt.Errorf("%s:%d: %s", path, pe.Line, pe.Message)
	}
	return fmt.Errorf("%s: %w", path, err)
}
