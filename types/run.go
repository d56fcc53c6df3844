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

package types

import "sort"

// RunOptions are the per-experiment caller options for one requested
// pipeline run. CropLength of 0 means no override; the minimum read length
// across the experiment's fastqs is used instead.
type RunOptions struct {
	Accession        string
	AlignOnly        bool
	CustomMessage    string
	CropLength       int
	MultipleControls bool
	ForceSingleEnd   bool
	Redacted         bool
}

// NormalizeRunOptions deduplicates runs by accession (keeping the first
// occurrence of each) and sorts them by accession.
func NormalizeRunOptions(runs []RunOptions) []RunOptions {
	seen := make(map[string]bool, len(runs))
	result := make([]RunOptions, 0, len(runs))

	for _, run := range runs {
		if seen[run.Accession] {
			continue
		}

		seen[run.Accession] = true

		result = append(result, run)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Accession < result[j].Accession
	})

	return result
}
