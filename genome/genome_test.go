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

package genome

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/chipseq-automation/types"
)

func TestForExperiment(t *testing.T) {
	Convey("You can get reference assets for supported organism and assay combinations", t, func() {
		Convey("Human standard ChIP gets a bowtie2 index and single blacklist", func() {
			for _, assay := range []types.AssayType{
				types.AssayTypeTFChIP, types.AssayTypeHistoneChIP, types.AssayTypeControlChIP,
			} {
				assets, err := ForExperiment(OrganismHuman, assay)
				So(err, ShouldBeNil)
				So(assets.GenomeTSV, ShouldEqual, hg38GenomeTSV)
				So(assets.ChromSizes, ShouldEqual, hg38ChromSizes)
				So(assets.RefFa, ShouldEqual, hg38RefFa)
				So(assets.Blacklist, ShouldEqual, hg38Blacklist)
				So(assets.Blacklist2, ShouldBeBlank)
				So(assets.Bowtie2IdxTar, ShouldEqual, hg38Bowtie2)
				So(assets.BwaIdxTar, ShouldBeBlank)
			}
		})

		Convey("Human Mint-ChIP gets a bwa index and both blacklists", func() {
			for _, assay := range []types.AssayType{
				types.AssayTypeMintChIP, types.AssayTypeControlMintChIP,
			} {
				assets, err := ForExperiment(OrganismHuman, assay)
				So(err, ShouldBeNil)
				So(assets.Blacklist, ShouldEqual, hg38Blacklist)
				So(assets.Blacklist2, ShouldEqual, hg38Blacklist2)
				So(assets.Bowtie2IdxTar, ShouldBeBlank)
				So(assets.BwaIdxTar, ShouldEqual, hg38BwaIndex)
			}
		})

		Convey("Mouse standard ChIP gets a bowtie2 index and single blacklist", func() {
			assets, err := ForExperiment(OrganismMouse, types.AssayTypeHistoneChIP)
			So(err, ShouldBeNil)
			So(assets.GenomeTSV, ShouldEqual, mm10GenomeTSV)
			So(assets.ChromSizes, ShouldEqual, mm10ChromSizes)
			So(assets.RefFa, ShouldEqual, mm10RefFa)
			So(assets.Blacklist, ShouldEqual, mm10Blacklist)
			So(assets.Blacklist2, ShouldBeBlank)
			So(assets.Bowtie2IdxTar, ShouldEqual, mm10Bowtie2)
			So(assets.BwaIdxTar, ShouldBeBlank)
		})

		Convey("Mouse Mint-ChIP gets references but no blacklists or index tars", func() {
			assets, err := ForExperiment(OrganismMouse, types.AssayTypeMintChIP)
			So(err, ShouldBeNil)
			So(assets.GenomeTSV, ShouldEqual, mm10GenomeTSV)
			So(assets.Blacklist, ShouldBeBlank)
			So(assets.Blacklist2, ShouldBeBlank)
			So(assets.Bowtie2IdxTar, ShouldBeBlank)
			So(assets.BwaIdxTar, ShouldBeBlank)
		})

		Convey("Anything else is an error", func() {
			_, err := ForExperiment("Drosophila melanogaster", types.AssayTypeTFChIP)
			So(err, ShouldEqual, ErrUnsupportedOrganismOrAssay)

			_, err = ForExperiment(OrganismHuman, "ATAC-seq")
			So(err, ShouldEqual, ErrUnsupportedOrganismOrAssay)
		})
	})
}
