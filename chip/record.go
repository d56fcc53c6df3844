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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wtsi-hgi/chipseq-automation/types"
)

const (
	recordFileSuffix = ".json"
	jsonIndent       = "    "
	filePerm         = 0644
)

// Record is one experiment's pipeline input configuration. Its field order
// is a contract: consumers diff emitted files, so keys must appear in this
// exact order. Optional fields are omitted entirely when empty, and all
// read 2 fastq lists are omitted for single-ended runs.
type Record struct {
	Title              string             `json:"chip.title"`
	Description        string             `json:"chip.description"`
	PipelineType       types.PipelineType `json:"chip.pipeline_type"`
	AlignOnly          bool               `json:"chip.align_only"`
	PairedEnd          bool               `json:"chip.paired_end"`
	CropLength         *int               `json:"chip.crop_length,omitempty"`
	CropLengthTol      *int               `json:"chip.crop_length_tol,omitempty"`
	GenomeTSV          string             `json:"chip.genome_tsv"`
	RefFa              string             `json:"chip.ref_fa"`
	Bowtie2IdxTar      string             `json:"chip.bowtie2_idx_tar,omitempty"`
	BwaIdxTar          string             `json:"chip.bwa_idx_tar,omitempty"`
	ChromSizes         string             `json:"chip.chrsz"`
	Blacklist          string             `json:"chip.blacklist,omitempty"`
	Blacklist2         string             `json:"chip.blacklist2,omitempty"`
	CtlNodupBams       []string           `json:"chip.ctl_nodup_bams,omitempty"`
	RedactNodupBam     *bool              `json:"chip.redact_nodup_bam,omitempty"`
	AlwaysUsePooledCtl *bool              `json:"chip.always_use_pooled_ctl,omitempty"`
	Aligner            string             `json:"chip.aligner,omitempty"`
	UseBwaMemForPe     *bool              `json:"chip.use_bwa_mem_for_pe,omitempty"`
	BwaMemReadLenLimit *int               `json:"chip.bwa_mem_read_len_limit,omitempty"`
	FastqsRep1R1       []string           `json:"chip.fastqs_rep1_R1,omitempty"`
	FastqsRep1R2       []string           `json:"chip.fastqs_rep1_R2,omitempty"`
	FastqsRep2R1       []string           `json:"chip.fastqs_rep2_R1,omitempty"`
	FastqsRep2R2       []string           `json:"chip.fastqs_rep2_R2,omitempty"`
	FastqsRep3R1       []string           `json:"chip.fastqs_rep3_R1,omitempty"`
	FastqsRep3R2       []string           `json:"chip.fastqs_rep3_R2,omitempty"`
	FastqsRep4R1       []string           `json:"chip.fastqs_rep4_R1,omitempty"`
	FastqsRep4R2       []string           `json:"chip.fastqs_rep4_R2,omitempty"`
	FastqsRep5R1       []string           `json:"chip.fastqs_rep5_R1,omitempty"`
	FastqsRep5R2       []string           `json:"chip.fastqs_rep5_R2,omitempty"`
	FastqsRep6R1       []string           `json:"chip.fastqs_rep6_R1,omitempty"`
	FastqsRep6R2       []string           `json:"chip.fastqs_rep6_R2,omitempty"`
	FastqsRep7R1       []string           `json:"chip.fastqs_rep7_R1,omitempty"`
	FastqsRep7R2       []string           `json:"chip.fastqs_rep7_R2,omitempty"`
	FastqsRep8R1       []string           `json:"chip.fastqs_rep8_R1,omitempty"`
	FastqsRep8R2       []string           `json:"chip.fastqs_rep8_R2,omitempty"`
	FastqsRep9R1       []string           `json:"chip.fastqs_rep9_R1,omitempty"`
	FastqsRep9R2       []string           `json:"chip.fastqs_rep9_R2,omitempty"`
	FastqsRep10R1      []string           `json:"chip.fastqs_rep10_R1,omitempty"`
	FastqsRep10R2      []string           `json:"chip.fastqs_rep10_R2,omitempty"`
}

// setFastqs copies the replicate slot assignments into the record. Read 2
// lists are dropped entirely for single-ended runs.
func (rec *Record) setFastqs(rf *replicateFastqs, pairedEnd bool) {
	r2 := rf.r2
	if !pairedEnd {
		r2 = [MaxReplicates][]string{}
	}

	rec.FastqsRep1R1, rec.FastqsRep1R2 = rf.r1[0], r2[0]
	rec.FastqsRep2R1, rec.FastqsRep2R2 = rf.r1[1], r2[1]
	rec.FastqsRep3R1, rec.FastqsRep3R2 = rf.r1[2], r2[2]
	rec.FastqsRep4R1, rec.FastqsRep4R2 = rf.r1[3], r2[3]
	rec.FastqsRep5R1, rec.FastqsRep5R2 = rf.r1[4], r2[4]
	rec.FastqsRep6R1, rec.FastqsRep6R2 = rf.r1[5], r2[5]
	rec.FastqsRep7R1, rec.FastqsRep7R2 = rf.r1[6], r2[6]
	rec.FastqsRep8R1, rec.FastqsRep8R2 = rf.r1[7], r2[7]
	rec.FastqsRep9R1, rec.FastqsRep9R2 = rf.r1[8], r2[8]
	rec.FastqsRep10R1, rec.FastqsRep10R2 = rf.r1[9], r2[9]
}

// Replicates returns the number of populated replicate slots.
func (rec *Record) Replicates() int {
	n := 0

	for _, links := range [][]string{
		rec.FastqsRep1R1, rec.FastqsRep2R1, rec.FastqsRep3R1, rec.FastqsRep4R1,
		rec.FastqsRep5R1, rec.FastqsRep6R1, rec.FastqsRep7R1, rec.FastqsRep8R1,
		rec.FastqsRep9R1, rec.FastqsRep10R1,
	} {
		if len(links) != 0 {
			n++
		}
	}

	return n
}

// Filename returns the basename the record should be written as.
func (rec *Record) Filename() string {
	return rec.Description + recordFileSuffix
}

// Write writes the record as indented JSON to a file named after its
// description in the given directory, returning the path written.
func (rec *Record) Write(dir string) (string, error) {
	data, err := json.MarshalIndent(rec, "", jsonIndent)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, rec.Filename())

	return path, os.WriteFile(path, data, filePerm)
}
