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

// eGFPTarget is the antibody target of eGFP-tagged TF experiments, the only
// case where a multi-control list may be narrowed to a wildtype control.
const eGFPTarget = "/targets/eGFP-avictoria/"

// controlResolution is the outcome of resolving an experiment's control(s):
// the chosen control dataset ids, the combined run type and minimum read
// length across experiment and controls, and the crop length to assign.
//
// combinedMin and cropLength differ when a crop length override is active:
// the override is assigned verbatim, while combinedMin still drives the
// search window for matching control bams.
type controlResolution struct {
	controls    []string
	runType     types.RunType
	combinedMin int
	cropLength  int
}

// resolveControls chooses the control dataset(s) for an experiment and
// computes the combined endedness and minimum read length across the
// experiment and its chosen controls. Control-type experiments need no
// controls of their own and resolve to their own values.
func (r *Resolver) resolveControls(exp *types.Experiment, run types.RunOptions,
	pipelineType types.PipelineType, expRunType types.RunType, expMin int) (*controlResolution, []Tag) {
	if pipelineType == types.PipelineTypeControl {
		return &controlResolution{
			runType:     expRunType,
			combinedMin: expMin,
			cropLength:  expMin,
		}, nil
	}

	if len(exp.PossibleControls) == 0 {
		return nil, []Tag{TagMissingControls}
	}

	controls := exp.PossibleControls

	if len(controls) > 1 && !run.MultipleControls {
		narrowed, tag := r.narrowControls(exp, pipelineType, controls)
		if tag != "" {
			return nil, []Tag{tag}
		}

		controls = narrowed
	}

	return r.combineWithControls(controls, run, expRunType, expMin)
}

// narrowControls reduces a multi-control list to a single control. Only
// eGFP-tagged TF experiments may be narrowed, to the control known to be
// wildtype; anything else with multiple controls is an error.
func (r *Resolver) narrowControls(exp *types.Experiment,
	pipelineType types.PipelineType, controls []string) ([]string, Tag) {
	targets := make(map[string]bool)

	for _, rep := range exp.Replicates {
		if !rep.HasAntibody {
			return nil, TagMissingAntibodyMetadata
		}

		for _, target := range rep.AntibodyTargets {
			targets[target] = true
		}
	}

	if len(targets) != 1 || !targets[eGFPTarget] || pipelineType != types.PipelineTypeTF {
		return nil, TagTooManyControls
	}

	for _, ctl := range controls {
		if r.wildtypeControls[ctl] {
			return []string{ctl}, ""
		}
	}

	return nil, TagNoWildtypeControlFound
}

// combineWithControls gathers endedness and read-length signals from the
// chosen controls' usable fastqs and combines them with the experiment's.
func (r *Resolver) combineWithControls(controls []string, run types.RunOptions,
	expRunType types.RunType, expMin int) (*controlResolution, []Tag) {
	ctlRunTypes, ctlReadLengths := r.controlFastqSignals(controls)

	var runType types.RunType

	switch {
	case run.ForceSingleEnd || expRunType == types.RunTypeSingleEnded || ctlRunTypes[types.RunTypeSingleEnded]:
		runType = types.RunTypeSingleEnded
	case expRunType == types.RunTypePairedEnded && len(ctlRunTypes) == 1 && ctlRunTypes[types.RunTypePairedEnded]:
		runType = types.RunTypePairedEnded
	default:
		return nil, []Tag{TagIndeterminateEndedness}
	}

	combinedMin := expMin

	for _, length := range ctlReadLengths {
		if length < combinedMin {
			combinedMin = length
		}
	}

	cropLength := combinedMin
	if run.CropLength != 0 {
		cropLength = expMin
	}

	return &controlResolution{
		controls:    controls,
		runType:     runType,
		combinedMin: combinedMin,
		cropLength:  cropLength,
	}, nil
}

func (r *Resolver) controlFastqSignals(controls []string) (map[types.RunType]bool, []int) {
	runTypes := make(map[types.RunType]bool)

	var readLengths []int

	for _, ctl := range controls {
		for _, file := range r.files.Dataset(ctl, types.FileFormatFastq) {
			if !file.Usable(r.allowed) {
				continue
			}

			if file.RunType != "" {
				runTypes[file.RunType] = true
			}

			if file.ReadLength > 0 {
				readLengths = append(readLengths, file.ReadLength)
			}
		}
	}

	return runTypes, readLengths
}
