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
	FileFormatFastq = "fastq"
	FileFormatBam   = "bam"

	// PairedEndR1 and PairedEndR2 are the paired-end markers of mate 1 and
	// mate 2 fastq files. Single-ended fastqs carry no marker.
	PairedEndR1 = "1"
	PairedEndR2 = "2"
)

// DefaultAllowedStatuses are the file and replicate statuses considered
// usable when a caller supplies no explicit allowed-status set.
var DefaultAllowedStatuses = []string{"released", "in progress"}

// File is a catalog file record. Link is its download link or storage URI,
// and is the unique key files are looked up by.
type File struct {
	ID                         string
	Link                       string
	Dataset                    string
	Format                     string
	Status                     string
	ReplicateStatus            string
	BioRep                     int
	PairedEnd                  string
	PairedWith                 string
	RunType                    RunType
	ReadLength                 int
	MappedRunType              RunType
	CroppedReadLength          int
	CroppedReadLengthTolerance int
}

// Usable reports whether both the file's status and its replicate's status
// are in the given allowed set.
func (f *File) Usable(allowed map[string]bool) bool {
	return allowed[f.Status] && allowed[f.ReplicateStatus]
}

// Files is an ordered collection of File, indexed by link and by catalog id.
type Files struct {
	ordered []*File
	byLink  map[string]*File
	byID    map[string]*File
}

// NewFiles creates a Files holding the given files, in the given order.
func NewFiles(files ...*File) *Files {
	fs := &Files{
		byLink: make(map[string]*File, len(files)),
		byID:   make(map[string]*File, len(files)),
	}

	for _, f := range files {
		fs.Add(f)
	}

	return fs
}

// Add appends a file to the collection. Files with a duplicate link are
// ignored, keeping the first seen.
func (fs *Files) Add(f *File) {
	if _, exists := fs.byLink[f.Link]; exists {
		return
	}

	fs.ordered = append(fs.ordered, f)
	fs.byLink[f.Link] = f

	if f.ID != "" {
		fs.byID[f.ID] = f
	}
}

// ByLink returns the file with the given link, or nil if not known.
func (fs *Files) ByLink(link string) *File {
	return fs.byLink[link]
}

// ByID returns the file with the given catalog id, or nil if not known.
func (fs *Files) ByID(id string) *File {
	return fs.byID[id]
}

// Dataset returns, in collection order, the files belonging to the given
// dataset that have the given format.
func (fs *Files) Dataset(dataset, format string) []*File {
	var result []*File

	for _, f := range fs.ordered {
		if f.Dataset == dataset && f.Format == format {
			result = append(result, f)
		}
	}

	return result
}

// Len returns the number of files in the collection.
func (fs *Files) Len() int {
	return len(fs.ordered)
}
