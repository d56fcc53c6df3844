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

package chip

import "github.com/wtsi-hgi/chipseq-automation/types"

// resolveEndedness determines an experiment's run type and minimum usable
// read length from the signals collected across its fastqs. A supplied crop
// length override is used verbatim as the minimum read length. An empty
// run-type label set cannot be resolved and is a failure, never a guess.
func resolveEndedness(readLengths []int, runTypes map[types.RunType]bool,
	run types.RunOptions) (types.RunType, int, []Tag) {
	minLength := run.CropLength
	if minLength == 0 {
		minLength = minOf(readLengths)
	}

	switch {
	case run.ForceSingleEnd || runTypes[types.RunTypeSingleEnded]:
		return types.RunTypeSingleEnded, minLength, nil
	case len(runTypes) == 1 && runTypes[types.RunTypePairedEnded]:
		return types.RunTypePairedEnded, minLength, nil
	default:
		return "", 0, []Tag{TagIndeterminateEndedness}
	}
}

func minOf(vals []int) int {
	if len(vals) == 0 {
		return 0
	}

	minVal := vals[0]

	for _, v := range vals[1:] {
		if v < minVal {
			minVal = v
		}
	}

	return minVal
}
