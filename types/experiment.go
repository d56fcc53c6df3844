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

const (
	ErrUnclassifiableExperiment = Error("assay type and control type do not classify to a pipeline type")
	ErrUnknownOrganism          = Error("experiment replicates do not share a single known organism")
)

// Replicate is a biological replicate of an experiment, carrying the
// metadata we need from its biosample and antibody.
type Replicate struct {
	Organism        string
	HasAntibody     bool
	AntibodyTargets []string
}

// Experiment is a catalog experiment with the fields needed to derive a
// pipeline input configuration.
type Experiment struct {
	ID               string
	Accession        string
	AssayTitle       AssayType
	ControlType      string
	PossibleControls []string
	Replicates       []*Replicate
	FileLinks        []string
}

// PipelineType classifies the experiment based on its assay title and
// control type. Control assays must carry a control type to classify as
// control runs; any other combination is unclassifiable.
func (e *Experiment) PipelineType() (PipelineType, error) {
	switch {
	case e.ControlType != "" && e.AssayTitle == AssayTypeControlChIP:
		return PipelineTypeControl, nil
	case e.ControlType != "" && e.AssayTitle == AssayTypeControlMintChIP:
		return PipelineTypeControl, nil
	case e.AssayTitle == AssayTypeTFChIP:
		return PipelineTypeTF, nil
	case e.AssayTitle == AssayTypeHistoneChIP, e.AssayTitle == AssayTypeMintChIP:
		return PipelineTypeHistone, nil
	default:
		return "", ErrUnclassifiableExperiment
	}
}

// Organism returns the scientific name of the organism shared by all of the
// experiment's replicates. Zero replicates, or replicates from more than one
// organism, are an error.
func (e *Experiment) Organism() (string, error) {
	organism := ""

	for _, rep := range e.Replicates {
		if rep.Organism == "" {
			continue
		}

		if organism != "" && organism != rep.Organism {
			return "", ErrUnknownOrganism
		}

		organism = rep.Organism
	}

	if organism == "" {
		return "", ErrUnknownOrganism
	}

	return organism, nil
}
