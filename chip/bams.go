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

// CropLengthTolerance is the window, in base pairs, around the combined
// minimum read length within which a pre-aligned control bam's cropped read
// length must fall, and the tolerance value the bam itself must record to
// be trusted.
const CropLengthTolerance = 2

// matchControlBams finds, for each chosen control, the pre-aligned bams
// whose replicate slot, mapped run type and cropped read length match the
// control resolution. A matching bam recording a tolerance other than 2 is
// untrusted: it still counts as found for the per-control no-match check,
// but poisons the whole match.
func (r *Resolver) matchControlBams(ctl *controlResolution) ([]string, []Tag) {
	var (
		bams     []string
		tags     []Tag
		unusable bool
	)

	for _, control := range ctl.controls {
		matchFound := false

		for rep := 1; rep <= MaxReplicates; rep++ {
			bam := r.findControlBam(control, rep, ctl)
			if bam == nil {
				continue
			}

			matchFound = true

			if bam.CroppedReadLengthTolerance == CropLengthTolerance {
				bams = append(bams, r.linkPrefix+bam.Link)
			} else {
				tags = appendTag(tags, TagUntrustedTolerance)
				unusable = true
			}
		}

		if !matchFound {
			tags = appendTag(tags, TagNoControlBamFound)
		}
	}

	if len(bams) == 0 || unusable {
		tags = appendTag(tags, TagControlBamMatchError)
	}

	if len(tags) > 0 {
		return nil, tags
	}

	return bams, nil
}

// findControlBam returns the first bam of the control dataset matching the
// given replicate slot, the combined run type, and the read-length window.
func (r *Resolver) findControlBam(control string, rep int, ctl *controlResolution) *types.File {
	for _, file := range r.files.Dataset(control, types.FileFormatBam) {
		if file.BioRep != rep || file.MappedRunType != ctl.runType {
			continue
		}

		if file.CroppedReadLength < ctl.combinedMin-CropLengthTolerance ||
			file.CroppedReadLength > ctl.combinedMin+CropLengthTolerance {
			continue
		}

		return file
	}

	return nil
}
