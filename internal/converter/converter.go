// Package converter wires the conversion pipeline together: it parses an ING
// CSV export, groups the transactions, renders one OFX document per group and
// writes the documents to disk.
package converter

import (
	"errors"
	"fmt"
	"path/filepath"

	"ing2ofx/internal/fileutils"
	"ing2ofx/internal/grouping"
	"ing2ofx/internal/ingparser"
	"ing2ofx/internal/ofx"
	"ing2ofx/internal/store"

	"github.com/sirupsen/logrus"
)

// DefaultOutputDir is where documents land when no directory is given.
const DefaultOutputDir = "ofx"

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options control a single conversion run.
type Options struct {
	// SplitByMonth writes one document per calendar month instead of one
	// document for the whole export.
	SplitByMonth bool
	// OutFile overrides the derived output file name. It cannot be combined
	// with SplitByMonth.
	OutFile string
	// OutDir is the directory documents are written to, DefaultOutputDir
	// when empty.
	OutDir string
	// CodesFile points at a YAML file with transaction code overrides. When
	// empty the default lookup locations are searched.
	CodesFile string
	// Renderer produces the OFX documents. A default renderer is used when
	// nil.
	Renderer *ofx.Renderer
}

// Result reports what a conversion run produced.
type Result struct {
	TransactionCount int
	Outputs          []string
}

// Convert runs the whole pipeline for one CSV file. Either every group is
// rendered and written, or no file is produced at all.
func Convert(csvPath string, opts Options) (*Result, error) {
	if opts.OutFile != "" && opts.SplitByMonth {
		return nil, errors.New("an explicit output file cannot be combined with monthly splitting")
	}

	loadCodeOverrides(opts.CodesFile)

	statement, err := ingparser.ParseFile(csvPath)
	if err != nil {
		return nil, err
	}

	groups := grouping.Split(statement, opts.SplitByMonth)

	renderer := opts.Renderer
	if renderer == nil {
		renderer = ofx.NewRenderer()
	}

	// Render everything before touching the filesystem so that a render
	// failure never leaves a partial set of output files behind.
	documents := make([]string, 0, len(groups))
	for _, group := range groups {
		doc, err := renderer.Render(group)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}

	result := &Result{TransactionCount: len(statement.Transactions)}
	for i, group := range groups {
		name := opts.OutFile
		if name == "" {
			name = fileutils.OutputName(csvPath, group.Month)
		}
		outPath := filepath.Join(outDir, name)

		if err := fileutils.WriteFile(outPath, []byte(documents[i]), 0600); err != nil {
			return nil, fmt.Errorf("failed to write OFX document: %w", err)
		}
		log.Infof("Wrote %d transactions to %s", len(group.Transactions), outPath)
		result.Outputs = append(result.Outputs, outPath)
	}

	return result, nil
}

// loadCodeOverrides installs user supplied transaction code mappings. A
// missing file just means there are no overrides; a broken one is reported
// but never aborts the conversion.
func loadCodeOverrides(codesFile string) {
	mappings, err := store.NewCodeStore(codesFile).LoadCodeMappings()
	if err != nil {
		log.Warnf("Ignoring transaction code overrides: %v", err)
		return
	}
	ingparser.SetCodeMappings(mappings)
}
