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

import (
	"fmt"

	"github.com/wtsi-hgi/chipseq-automation/genome"
	"github.com/wtsi-hgi/chipseq-automation/types"
)

const mintAligner = "bwa"

// assemble merges everything resolved for an experiment into its Record.
func (r *Resolver) assemble(exp *types.Experiment, run types.RunOptions,
	pipelineType types.PipelineType, assets genome.Assets,
	rf *replicateFastqs, ctl *controlResolution, bams []string) *Record {
	pairedEnd := ctl.runType == types.RunTypePairedEnded
	mint := exp.AssayTitle.Mint()

	rec := &Record{
		Title:         exp.Accession,
		PipelineType:  pipelineType,
		AlignOnly:     run.AlignOnly,
		PairedEnd:     pairedEnd,
		GenomeTSV:     assets.GenomeTSV,
		RefFa:         assets.RefFa,
		Bowtie2IdxTar: assets.Bowtie2IdxTar,
		BwaIdxTar:     assets.BwaIdxTar,
		ChromSizes:    assets.ChromSizes,
		Blacklist:     assets.Blacklist,
		Blacklist2:    assets.Blacklist2,
		CtlNodupBams:  bams,
	}

	// crop length never applies to Mint-ChIP
	if !mint {
		rec.CropLength = intPtr(ctl.cropLength)
		rec.CropLengthTol = intPtr(CropLengthTolerance)
	}

	if run.Redacted {
		rec.RedactNodupBam = boolPtr(true)
	}

	if pipelineType != types.PipelineTypeControl {
		rec.AlwaysUsePooledCtl = boolPtr(true)
	}

	if mint {
		rec.Aligner = mintAligner
		rec.UseBwaMemForPe = boolPtr(true)
		rec.BwaMemReadLenLimit = intPtr(0)
	}

	rec.setFastqs(rf, pairedEnd)

	rec.Description = description(exp.Accession, pairedEnd, ctl.cropLength,
		mint, rf.count(), pipelineType, run.AlignOnly)

	return rec
}

// description builds the run description used in record filenames and
// submit commands, eg. "ENCSR000AAA_PE_36_crop_2rep_tf_peakcall".
func description(accession string, pairedEnd bool, cropLength int, mint bool,
	replicates int, pipelineType types.PipelineType, alignOnly bool) string {
	ended := "SE"
	if pairedEnd {
		ended = "PE"
	}

	crop := "no_crop"
	if !mint {
		crop = fmt.Sprintf("%d_crop", cropLength)
	}

	stage := "peakcall"
	if alignOnly {
		stage = "alignonly"
	}

	return fmt.Sprintf("%s_%s_%s_%drep_%s_%s",
		accession, ended, crop, replicates, pipelineType, stage)
}

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
