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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExperiment(t *testing.T) {
	Convey("Given an Experiment, you can classify its pipeline type", t, func() {
		exp := &Experiment{AssayTitle: AssayTypeTFChIP}

		pt, err := exp.PipelineType()
		So(err, ShouldBeNil)
		So(pt, ShouldEqual, PipelineTypeTF)

		exp.AssayTitle = AssayTypeHistoneChIP
		pt, err = exp.PipelineType()
		So(err, ShouldBeNil)
		So(pt, ShouldEqual, PipelineTypeHistone)

		exp.AssayTitle = AssayTypeMintChIP
		pt, err = exp.PipelineType()
		So(err, ShouldBeNil)
		So(pt, ShouldEqual, PipelineTypeHistone)

		Convey("Control assays classify as control only with a control type", func() {
			exp.AssayTitle = AssayTypeControlChIP

			_, err := exp.PipelineType()
			So(err, ShouldEqual, ErrUnclassifiableExperiment)

			exp.ControlType = "input library"
			pt, err := exp.PipelineType()
			So(err, ShouldBeNil)
			So(pt, ShouldEqual, PipelineTypeControl)

			exp.AssayTitle = AssayTypeControlMintChIP
			pt, err = exp.PipelineType()
			So(err, ShouldBeNil)
			So(pt, ShouldEqual, PipelineTypeControl)
		})

		Convey("Unknown assay titles are unclassifiable", func() {
			exp.AssayTitle = "ATAC-seq"

			_, err := exp.PipelineType()
			So(err, ShouldEqual, ErrUnclassifiableExperiment)
		})
	})

	Convey("Given an Experiment, you can get its organism", t, func() {
		exp := &Experiment{Replicates: []*Replicate{
			{Organism: "Homo sapiens"},
			{Organism: "Homo sapiens"},
		}}

		organism, err := exp.Organism()
		So(err, ShouldBeNil)
		So(organism, ShouldEqual, "Homo sapiens")

		Convey("Replicates without organism metadata are ignored", func() {
			exp.Replicates = append(exp.Replicates, &Replicate{})

			organism, err := exp.Organism()
			So(err, ShouldBeNil)
			So(organism, ShouldEqual, "Homo sapiens")
		})

		Convey("Mixed organisms are an error", func() {
			exp.Replicates = append(exp.Replicates, &Replicate{Organism: "Mus musculus"})

			_, err := exp.Organism()
			So(err, ShouldEqual, ErrUnknownOrganism)
		})

		Convey("No organisms at all is an error", func() {
			exp.Replicates = nil

			_, err := exp.Organism()
			So(err, ShouldEqual, ErrUnknownOrganism)
		})
	})
}

func TestFiles(t *testing.T) {
	Convey("Given Files, you can look files up and filter them", t, func() {
		f1 := &File{ID: "/files/A/", Link: "/A.fastq.gz", Dataset: "/experiments/X/", Format: FileFormatFastq}
		f2 := &File{ID: "/files/B/", Link: "/B.bam", Dataset: "/experiments/X/", Format: FileFormatBam}
		f3 := &File{ID: "/files/C/", Link: "/C.fastq.gz", Dataset: "/experiments/Y/", Format: FileFormatFastq}

		fs := NewFiles(f1, f2, f3)
		So(fs.Len(), ShouldEqual, 3)

		So(fs.ByLink("/A.fastq.gz"), ShouldEqual, f1)
		So(fs.ByLink("/missing"), ShouldBeNil)
		So(fs.ByID("/files/B/"), ShouldEqual, f2)

		So(fs.Dataset("/experiments/X/", FileFormatFastq), ShouldResemble, []*File{f1})
		So(fs.Dataset("/experiments/X/", FileFormatBam), ShouldResemble, []*File{f2})
		So(fs.Dataset("/experiments/Z/", FileFormatFastq), ShouldBeNil)

		Convey("Duplicate links keep the first file seen", func() {
			fs.Add(&File{ID: "/files/D/", Link: "/A.fastq.gz"})
			So(fs.Len(), ShouldEqual, 3)
			So(fs.ByLink("/A.fastq.gz"), ShouldEqual, f1)
		})
	})

	Convey("A File is usable when both its statuses are allowed", t, func() {
		allowed := map[string]bool{"released": true, "in progress": true}

		f := &File{Status: "released", ReplicateStatus: "released"}
		So(f.Usable(allowed), ShouldBeTrue)

		f.ReplicateStatus = "revoked"
		So(f.Usable(allowed), ShouldBeFalse)

		f.ReplicateStatus = "in progress"
		f.Status = "archived"
		So(f.Usable(allowed), ShouldBeFalse)
	})
}

func TestRunOptions(t *testing.T) {
	Convey("NormalizeRunOptions dedupes by accession and sorts", t, func() {
		runs := NormalizeRunOptions([]RunOptions{
			{Accession: "ENCSR000AAB", AlignOnly: true},
			{Accession: "ENCSR000AAA"},
			{Accession: "ENCSR000AAB"},
		})

		So(runs, ShouldResemble, []RunOptions{
			{Accession: "ENCSR000AAA"},
			{Accession: "ENCSR000AAB", AlignOnly: true},
		})
	})

	Convey("Mint assay types are recognised", t, func() {
		So(AssayTypeMintChIP.Mint(), ShouldBeTrue)
		So(AssayTypeControlMintChIP.Mint(), ShouldBeTrue)
		So(AssayTypeTFChIP.Mint(), ShouldBeFalse)
		So(AssayTypeControlChIP.Mint(), ShouldBeFalse)
	})
}
