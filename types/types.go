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

// package types holds the metadata records that pipeline input generation
// works on: experiments, their files, and per-run caller options.

package types

type Error string

func (e Error) Error() string { return string(e) }

// AssayType is the assay title of an experiment as recorded in the catalog.
type AssayType string

const (
	AssayTypeTFChIP          AssayType = "TF ChIP-seq"
	AssayTypeHistoneChIP     AssayType = "Histone ChIP-seq"
	AssayTypeMintChIP        AssayType = "Mint-ChIP-seq"
	AssayTypeControlChIP     AssayType = "Control ChIP-seq"
	AssayTypeControlMintChIP AssayType = "Control Mint-ChIP-seq"
)

// Mint reports whether this is one of the Mint-ChIP assay types, which are
// aligned with bwa and never cropped.
func (a AssayType) Mint() bool {
	return a == AssayTypeMintChIP || a == AssayTypeControlMintChIP
}

// RunType is the sequencing endedness of a file or experiment.
type RunType string

const (
	RunTypeSingleEnded RunType = "single-ended"
	RunTypePairedEnded RunType = "paired-ended"
)

// PipelineType classifies an experiment for the downstream ChIP pipeline.
type PipelineType string

const (
	PipelineTypeTF      PipelineType = "tf"
	PipelineTypeHistone PipelineType = "histone"
	PipelineTypeControl PipelineType = "control"
)
