/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Authors:
 *	- Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// Package runlist turns TSV files and command line options in to the list of
// pipeline runs to generate inputs for.
package runlist

import (
	"os"
	"strconv"
	"strings"

	"github.com/wtsi-hgi/chipseq-automation/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoRunsFound       = Error("no runs found in TSV file")
	ErrMissingColumns    = Error("TSV file did not contain accession and align_only columns")
	ErrUnbalancedOptions = Error("per-accession options must be given once, or once per accession")
)

const (
	colAccession        = "accession"
	colAlignOnly        = "align_only"
	colCustomMessage    = "custom_message"
	colCropLength       = "custom_crop_length"
	colMultipleControls = "multiple_controls"
	colForceSingleEnd   = "force_se"
	colRedacted         = "redacted"
)

// ParseFile reads a tab separated file with a header line and one row per
// desired pipeline run, returning the runs deduplicated by accession and
// sorted. The header must name accession and align_only columns;
// custom_message, custom_crop_length, multiple_controls, force_se and
// redacted columns are optional and default to their zero values. Blank
// lines and rows with a blank accession are skipped.
func ParseFile(path string) ([]types.RunOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		return nil, ErrNoRunsFound
	}

	cols, err := headerIndexes(lines[0])
	if err != nil {
		return nil, err
	}

	runs := make([]types.RunOptions, 0, len(lines)-1)

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}

		run, err := parseLine(line, cols)
		if err != nil {
			return nil, err
		}

		if run.Accession == "" {
			continue
		}

		runs = append(runs, run)
	}

	if len(runs) == 0 {
		return nil, ErrNoRunsFound
	}

	return types.NormalizeRunOptions(runs), nil
}

func headerIndexes(header string) (map[string]int, error) {
	cols := make(map[string]int)

	for i, name := range strings.Split(header, "\t") {
		cols[strings.TrimSpace(name)] = i
	}

	if _, ok := cols[colAccession]; !ok {
		return nil, ErrMissingColumns
	}

	if _, ok := cols[colAlignOnly]; !ok {
		return nil, ErrMissingColumns
	}

	return cols, nil
}

func parseLine(line string, cols map[string]int) (types.RunOptions, error) {
	fields := strings.Split(line, "\t")

	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(fields) {
			return ""
		}

		return strings.TrimSpace(fields[i])
	}

	alignOnly, err := parseBool(field(colAlignOnly))
	if err != nil {
		return types.RunOptions{}, err
	}

	cropLength, err := parseInt(field(colCropLength))
	if err != nil {
		return types.RunOptions{}, err
	}

	multiple, err := parseBool(field(colMultipleControls))
	if err != nil {
		return types.RunOptions{}, err
	}

	forceSE, err := parseBool(field(colForceSingleEnd))
	if err != nil {
		return types.RunOptions{}, err
	}

	redacted, err := parseBool(field(colRedacted))
	if err != nil {
		return types.RunOptions{}, err
	}

	return types.RunOptions{
		Accession:        field(colAccession),
		AlignOnly:        alignOnly,
		CustomMessage:    field(colCustomMessage),
		CropLength:       cropLength,
		MultipleControls: multiple,
		ForceSingleEnd:   forceSE,
		Redacted:         redacted,
	}, nil
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}

	return strconv.ParseBool(s)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

// Args holds per-accession options supplied on the command line. Each slice
// must either be empty, hold a single value that applies to every accession,
// or hold one value per accession in the same order.
type Args struct {
	AlignOnly        bool
	CustomMessages   []string
	CropLengths      []int
	MultipleControls []bool
	ForceSingleEnd   []bool
	Redacted         []bool
}

// FromArgs turns a comma separated list of experiment accessions and
// per-accession options in to runs, deduplicated by accession and sorted.
func FromArgs(accessions string, args Args) ([]types.RunOptions, error) {
	accs := splitCommas(accessions)
	if len(accs) == 0 {
		return nil, ErrNoRunsFound
	}

	runs := make([]types.RunOptions, len(accs))

	for i, acc := range accs {
		message, err := pick(args.CustomMessages, i, len(accs))
		if err != nil {
			return nil, err
		}

		cropLength, err := pick(args.CropLengths, i, len(accs))
		if err != nil {
			return nil, err
		}

		multiple, err := pick(args.MultipleControls, i, len(accs))
		if err != nil {
			return nil, err
		}

		forceSE, err := pick(args.ForceSingleEnd, i, len(accs))
		if err != nil {
			return nil, err
		}

		redacted, err := pick(args.Redacted, i, len(accs))
		if err != nil {
			return nil, err
		}

		runs[i] = types.RunOptions{
			Accession:        acc,
			AlignOnly:        args.AlignOnly,
			CustomMessage:    message,
			CropLength:       cropLength,
			MultipleControls: multiple,
			ForceSingleEnd:   forceSE,
			Redacted:         redacted,
		}
	}

	return types.NormalizeRunOptions(runs), nil
}

func splitCommas(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// pick returns the option for the i'th accession: the zero value if none were
// given, the only value if one was, or the i'th of n values.
func pick[T any](vals []T, i, n int) (T, error) {
	var zero T

	switch len(vals) {
	case 0:
		return zero, nil
	case 1:
		return vals[0], nil
	case n:
		return vals[i], nil
	default:
		return zero, ErrUnbalancedOptions
	}
}
