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

// package genome maps an experiment's organism and assay type to the fixed
// set of reference assets the pipeline needs.

package genome

import "github.com/wtsi-hgi/chipseq-automation/types"

type Error string

func (e Error) Error() string { return string(e) }

const ErrUnsupportedOrganismOrAssay = Error("unsupported organism or assay type")

const (
	OrganismHuman = "Homo sapiens"
	OrganismMouse = "Mus musculus"

	hg38GenomeTSV  = "https://storage.googleapis.com/encode-pipeline-genome-data/genome_tsv/v3/hg38.tsv"
	hg38ChromSizes = "https://www.encodeproject.org/files/GRCh38_EBV.chrom.sizes/@@download/GRCh38_EBV.chrom.sizes.tsv"
	hg38RefFa      = "https://www.encodeproject.org/files/GRCh38_no_alt_analysis_set_GCA_000001405.15/" +
		"@@download/GRCh38_no_alt_analysis_set_GCA_000001405.15.fasta.gz"
	hg38Blacklist  = "https://www.encodeproject.org/files/ENCFF356LFX/@@download/ENCFF356LFX.bed.gz"
	hg38Blacklist2 = "https://www.encodeproject.org/files/ENCFF023CZC/@@download/ENCFF023CZC.bed.gz"
	hg38Bowtie2    = "https://www.encodeproject.org/files/ENCFF110MCL/@@download/ENCFF110MCL.tar.gz"
	hg38BwaIndex   = "https://www.encodeproject.org/files/ENCFF643CGH/@@download/ENCFF643CGH.tar.gz"

	mm10GenomeTSV  = "https://storage.googleapis.com/encode-pipeline-genome-data/genome_tsv/v3/mm10.tsv"
	mm10ChromSizes = "https://www.encodeproject.org/files/mm10_no_alt.chrom.sizes/@@download/mm10_no_alt.chrom.sizes.tsv"
	mm10RefFa      = "https://www.encodeproject.org/files/mm10_no_alt_analysis_set_ENCODE/" +
		"@@download/mm10_no_alt_analysis_set_ENCODE.fasta.gz"
	mm10Blacklist = "https://www.encodeproject.org/files/ENCFF547MET/@@download/ENCFF547MET.bed.gz"
	mm10Bowtie2   = "https://www.encodeproject.org/files/ENCFF309GLL/@@download/ENCFF309GLL.tar.gz"
)

// Assets is the bundle of reference asset URIs for one organism and assay
// category. Only human Mint-ChIP runs carry a secondary blacklist and a bwa
// index; only non-Mint runs carry a bowtie2 index.
type Assets struct {
	GenomeTSV     string
	ChromSizes    string
	RefFa         string
	Blacklist     string
	Blacklist2    string
	Bowtie2IdxTar string
	BwaIdxTar     string
}

// ForExperiment returns the reference assets for the given organism
// scientific name and assay type. Combinations outside the supported table
// are an error; there is deliberately no default.
func ForExperiment(organism string, assay types.AssayType) (Assets, error) {
	switch organism {
	case OrganismHuman:
		return humanAssets(assay)
	case OrganismMouse:
		return mouseAssets(assay)
	default:
		return Assets{}, ErrUnsupportedOrganismOrAssay
	}
}

func humanAssets(assay types.AssayType) (Assets, error) {
	assets := Assets{
		GenomeTSV:  hg38GenomeTSV,
		ChromSizes: hg38ChromSizes,
		RefFa:      hg38RefFa,
	}

	switch {
	case assay.Mint():
		assets.Blacklist = hg38Blacklist
		assets.Blacklist2 = hg38Blacklist2
		assets.BwaIdxTar = hg38BwaIndex
	case standardChIP(assay):
		assets.Blacklist = hg38Blacklist
		assets.Bowtie2IdxTar = hg38Bowtie2
	default:
		return Assets{}, ErrUnsupportedOrganismOrAssay
	}

	return assets, nil
}

func mouseAssets(assay types.AssayType) (Assets, error) {
	assets := Assets{
		GenomeTSV:  mm10GenomeTSV,
		ChromSizes: mm10ChromSizes,
		RefFa:      mm10RefFa,
	}

	switch {
	case assay.Mint():
		// mouse Mint-ChIP has no blacklist and no prebuilt aligner index tar
	case standardChIP(assay):
		assets.Blacklist = mm10Blacklist
		assets.Bowtie2IdxTar = mm10Bowtie2
	default:
		return Assets{}, ErrUnsupportedOrganismOrAssay
	}

	return assets, nil
}

func standardChIP(assay types.AssayType) bool {
	switch assay {
	case types.AssayTypeTFChIP, types.AssayTypeHistoneChIP, types.AssayTypeControlChIP:
		return true
	default:
		return false
	}
}
