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

// MaxReplicates is the number of biological replicate slots the pipeline
// accepts per experiment.
const MaxReplicates = 10

// replicateFastqs holds the read 1 and read 2 fastq links assigned to each
// replicate slot. Slot n is index n-1.
type replicateFastqs struct {
	r1 [MaxReplicates][]string
	r2 [MaxReplicates][]string
}

// assignFastqs groups an experiment's usable fastq files into replicate
// slots, pairing mates via their paired_with links unless the run is forced
// single-ended. It also collects the read lengths and run-type labels seen
// across all usable fastqs, for endedness resolution.
func (r *Resolver) assignFastqs(exp *types.Experiment,
	run types.RunOptions) (*replicateFastqs, []int, map[types.RunType]bool, []Tag) {
	rf := &replicateFastqs{}

	var (
		readLengths []int
		tags        []Tag
	)

	runTypes := make(map[types.RunType]bool)

	for _, link := range exp.FileLinks {
		file := r.files.ByLink(link)
		if file == nil || file.Format != types.FileFormatFastq || !file.Usable(r.allowed) {
			continue
		}

		tags = r.assignFastq(rf, file, run.ForceSingleEnd, tags)

		if file.ReadLength > 0 {
			readLengths = append(readLengths, file.ReadLength)
		}

		if file.RunType != "" {
			runTypes[file.RunType] = true
		}
	}

	if rf.empty() {
		tags = appendTag(tags, TagNoUsableFastqs)
	}

	rf.squeeze()

	return rf, readLengths, runTypes, tags
}

// assignFastq puts one fastq file into its replicate slot. Mate 2 files are
// skipped here; they enter the read 2 slot via their mate 1's paired_with
// link, so that reads 1 and 2 stay in matching order.
func (r *Resolver) assignFastq(rf *replicateFastqs, file *types.File, forceSE bool, tags []Tag) []Tag {
	slot := file.BioRep
	if slot < 1 || slot > MaxReplicates {
		return tags
	}

	switch file.PairedEnd {
	case types.PairedEndR1:
		rf.r1[slot-1] = append(rf.r1[slot-1], r.linkPrefix+file.Link)

		if !forceSE {
			mate := r.files.ByID(file.PairedWith)
			if mate == nil {
				return appendTag(tags, TagMissingMatePair)
			}

			rf.r2[slot-1] = append(rf.r2[slot-1], r.linkPrefix+mate.Link)
		}
	case "":
		rf.r1[slot-1] = append(rf.r1[slot-1], r.linkPrefix+file.Link)
	}

	return tags
}

func (rf *replicateFastqs) empty() bool {
	for _, links := range rf.r1 {
		if len(links) != 0 {
			return false
		}
	}

	return true
}

// squeeze renumbers slots so that populated slots occupy the lowest indices
// without gaps, preserving their relative order.
func (rf *replicateFastqs) squeeze() {
	for k := 0; k < MaxReplicates; k++ {
		if len(rf.r1[k]) != 0 {
			continue
		}

		for i := k + 1; i < MaxReplicates; i++ {
			if len(rf.r1[i]) == 0 {
				continue
			}

			rf.r1[k], rf.r2[k] = rf.r1[i], rf.r2[i]
			rf.r1[i], rf.r2[i] = nil, nil

			break
		}
	}
}

// count returns the number of populated replicate slots.
func (rf *replicateFastqs) count() int {
	n := 0

	for _, links := range rf.r1 {
		if len(links) != 0 {
			n++
		}
	}

	return n
}
