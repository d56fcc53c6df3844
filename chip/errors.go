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

type Error string

func (e Error) Error() string { return string(e) }

const ErrUnknownExperiment = Error("no experiment metadata supplied for a requested accession")

// Tag classifies why an experiment could not be resolved to a pipeline
// input configuration. Tags are per-experiment and recoverable: a tagged
// experiment is excluded from the output, never aborting the batch.
type Tag string

const (
	TagNoUsableFastqs             Tag = "no_usable_fastqs"
	TagMissingMatePair            Tag = "missing_mate_pair"
	TagIndeterminateEndedness     Tag = "indeterminate_endedness"
	TagMissingControls            Tag = "missing_controls"
	TagMissingAntibodyMetadata    Tag = "missing_antibody_metadata"
	TagTooManyControls            Tag = "too_many_controls"
	TagNoWildtypeControlFound     Tag = "no_wildtype_control_found"
	TagNoControlBamFound          Tag = "no_control_bam_found"
	TagUntrustedTolerance         Tag = "untrusted_tolerance"
	TagControlBamMatchError       Tag = "control_bam_match_error"
	TagUnsupportedOrganismOrAssay Tag = "unsupported_organism_or_assay"
	TagControlNotAlignOnly        Tag = "control_not_align_only"
)

// Message returns an operator-readable description of the tag.
func (t Tag) Message() string {
	switch t {
	case TagNoUsableFastqs:
		return "no usable fastqs were found"
	case TagMissingMatePair:
		return "metadata error (missing expected read 2 fastq)"
	case TagIndeterminateEndedness:
		return "could not determine correct endedness for the experiment and its control"
	case TagMissingControls:
		return "no controls in possible_controls"
	case TagMissingAntibodyMetadata:
		return "a replicate is missing metadata about the antibody used"
	case TagTooManyControls:
		return "too many controls"
	case TagNoWildtypeControlFound:
		return "could not locate wildtype control"
	case TagNoControlBamFound:
		return "no bams found in a control"
	case TagUntrustedTolerance:
		return "tolerance of a matching control bam is not 2 bp"
	case TagControlBamMatchError:
		return "no usable control bams found"
	case TagUnsupportedOrganismOrAssay:
		return "unsupported organism or assay type"
	case TagControlNotAlignOnly:
		return "experiment is a control but was not align_only"
	default:
		return string(t)
	}
}

func appendTag(tags []Tag, tag Tag) []Tag {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}

	return append(tags, tag)
}
