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

// package chip turns experiment, file and control metadata into validated
// per-experiment pipeline input configurations, classifying anything
// insufficient or contradictory with a per-experiment error tag.

package chip

import (
	"sort"
	"sync"

	"github.com/wtsi-hgi/chipseq-automation/genome"
	"github.com/wtsi-hgi/chipseq-automation/types"
)

// Resolver resolves requested runs against read-only metadata collections.
// The collections must not be mutated during a Resolve call; with that
// guaranteed, experiments are resolved concurrently without locking since
// each writes only its own result slot.
type Resolver struct {
	experiments      map[string]*types.Experiment
	files            *types.Files
	wildtypeControls map[string]bool
	allowed          map[string]bool
	linkPrefix       string
}

// Options configure a Resolver.
type Options struct {
	// AllowedStatuses are the usable file and replicate statuses, defaulting
	// to types.DefaultAllowedStatuses.
	AllowedStatuses []string

	// LinkPrefix is prepended to every file link in the output, eg. the
	// portal server URL when links are portal download paths. Blank for
	// links that are already absolute, such as s3 URIs.
	LinkPrefix string
}

// New returns a Resolver over the given experiments (keyed by accession),
// files, and wildtype control dataset ids.
func New(experiments []*types.Experiment, files *types.Files,
	wildtypeControlIDs []string, opts Options) *Resolver {
	expMap := make(map[string]*types.Experiment, len(experiments))
	for _, exp := range experiments {
		expMap[exp.Accession] = exp
	}

	wildtype := make(map[string]bool, len(wildtypeControlIDs))
	for _, id := range wildtypeControlIDs {
		wildtype[id] = true
	}

	statuses := opts.AllowedStatuses
	if len(statuses) == 0 {
		statuses = types.DefaultAllowedStatuses
	}

	allowed := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		allowed[status] = true
	}

	return &Resolver{
		experiments:      expMap,
		files:            files,
		wildtypeControls: wildtype,
		allowed:          allowed,
		linkPrefix:       opts.LinkPrefix,
	}
}

// Results are the outcome of a Resolve: a Record per valid experiment and a
// tag list per errored experiment, both keyed by accession. An experiment
// appears in exactly one of the two maps.
type Results struct {
	Records map[string]*Record
	Errors  map[string][]Tag
}

// Accessions returns the accessions of the valid records, sorted.
func (r *Results) Accessions() []string {
	return sortedKeysRecords(r.Records)
}

// Errored returns the accessions of the errored experiments, sorted.
func (r *Results) Errored() []string {
	return sortedKeysTags(r.Errors)
}

func sortedKeysRecords(m map[string]*Record) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func sortedKeysTags(m map[string][]Tag) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Resolve resolves all requested runs, concurrently, and partitions them
// into valid records and errored experiments. Requested accessions without
// experiment metadata are a batch-level error: they mean metadata retrieval
// was incomplete, not that an experiment is bad.
func (r *Resolver) Resolve(runs []types.RunOptions) (*Results, error) {
	runs = types.NormalizeRunOptions(runs)

	for _, run := range runs {
		if r.experiments[run.Accession] == nil {
			return nil, ErrUnknownExperiment
		}
	}

	type outcome struct {
		record *Record
		tags   []Tag
	}

	outcomes := make([]outcome, len(runs))

	var wg sync.WaitGroup

	for i, run := range runs {
		wg.Add(1)

		go func(i int, run types.RunOptions) {
			defer wg.Done()

			record, tags := r.resolveOne(r.experiments[run.Accession], run)
			outcomes[i] = outcome{record: record, tags: tags}
		}(i, run)
	}

	wg.Wait()

	results := &Results{
		Records: make(map[string]*Record, len(runs)),
		Errors:  make(map[string][]Tag),
	}

	for i, run := range runs {
		if len(outcomes[i].tags) > 0 {
			results.Errors[run.Accession] = outcomes[i].tags
		} else {
			results.Records[run.Accession] = outcomes[i].record
		}
	}

	return results, nil
}

// resolveOne runs the per-experiment resolution stages in order, stopping
// at the first stage that tags the experiment.
func (r *Resolver) resolveOne(exp *types.Experiment, run types.RunOptions) (*Record, []Tag) {
	organism, err := exp.Organism()
	if err != nil {
		return nil, []Tag{TagUnsupportedOrganismOrAssay}
	}

	assets, err := genome.ForExperiment(organism, exp.AssayTitle)
	if err != nil {
		return nil, []Tag{TagUnsupportedOrganismOrAssay}
	}

	pipelineType, err := exp.PipelineType()
	if err != nil {
		return nil, []Tag{TagUnsupportedOrganismOrAssay}
	}

	rf, readLengths, runTypes, tags := r.assignFastqs(exp, run)
	if len(tags) > 0 {
		return nil, tags
	}

	expRunType, expMin, tags := resolveEndedness(readLengths, runTypes, run)
	if len(tags) > 0 {
		return nil, tags
	}

	ctl, tags := r.resolveControls(exp, run, pipelineType, expRunType, expMin)
	if len(tags) > 0 {
		return nil, tags
	}

	var bams []string

	if pipelineType != types.PipelineTypeControl {
		bams, tags = r.matchControlBams(ctl)
		if len(tags) > 0 {
			return nil, tags
		}
	}

	if pipelineType == types.PipelineTypeControl && !run.AlignOnly {
		return nil, []Tag{TagControlNotAlignOnly}
	}

	return r.assemble(exp, run, pipelineType, assets, rf, ctl, bams), nil
}
