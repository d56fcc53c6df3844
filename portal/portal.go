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

// package portal retrieves experiment and file metadata from the ENCODE
// catalog's report views, shaped into the types the resolution engine
// works on.

package portal

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/wtsi-hgi/chipseq-automation/config"
	"github.com/wtsi-hgi/chipseq-automation/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrRequestFailed = Error("portal request failed")

const (
	// chunkSize caps accessions per report query, to keep query strings
	// under the portal's URL length limit.
	chunkSize = 100

	requestTimeout = 5 * time.Minute
)

// Portal is a client for the ENCODE metadata catalog.
type Portal struct {
	server    string
	apiKey    string
	secretKey string
	useS3     bool
	statuses  []string
	client    *http.Client
}

// Options configure a Portal beyond what config supplies.
type Options struct {
	// Server overrides the configured catalog URL.
	Server string

	// UseS3URIs makes file links s3 URIs instead of portal download links.
	UseS3URIs bool

	// AllowedStatuses restrict which file statuses are retrieved,
	// defaulting to types.DefaultAllowedStatuses.
	AllowedStatuses []string
}

// New returns a Portal that queries the catalog configured in c, with api
// keypair auth if one is configured.
func New(c *config.Config, opts Options) *Portal {
	server := opts.Server
	if server == "" {
		server = c.Server
	}

	statuses := opts.AllowedStatuses
	if len(statuses) == 0 {
		statuses = types.DefaultAllowedStatuses
	}

	return &Portal{
		server:    strings.TrimRight(server, "/"),
		apiKey:    c.APIKey,
		secretKey: c.SecretKey,
		useS3:     opts.UseS3URIs,
		statuses:  statuses,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// LinkPrefix returns the prefix callers must prepend to retrieved file
// links to make them absolute. Blank when using s3 URIs, which already are.
func (p *Portal) LinkPrefix() string {
	if p.useS3 {
		return ""
	}

	return p.server
}

type experimentReport struct {
	Graph []experimentRow `json:"@graph"`
}

type experimentRow struct {
	ID               string         `json:"@id"`
	Accession        string         `json:"accession"`
	AssayTitle       string         `json:"assay_title"`
	ControlType      string         `json:"control_type"`
	PossibleControls []idRef        `json:"possible_controls"`
	Replicates       []replicateRow `json:"replicates"`
	Files            []fileLinks    `json:"files"`
}

type idRef struct {
	ID string `json:"@id"`
}

type fileLinks struct {
	Href  string `json:"href"`
	S3URI string `json:"s3_uri"`
}

type replicateRow struct {
	Antibody *struct {
		Targets []string `json:"targets"`
	} `json:"antibody"`
	Library struct {
		Biosample struct {
			Organism struct {
				ScientificName string `json:"scientific_name"`
			} `json:"organism"`
		} `json:"biosample"`
	} `json:"library"`
}

// Experiments retrieves the experiments with the given accessions, sorted
// by accession. Queries are chunked to stay within URL length limits.
func (p *Portal) Experiments(accessions []string) ([]*types.Experiment, error) {
	var experiments []*types.Experiment

	for _, chunk := range chunkStrings(accessions, chunkSize) {
		var report experimentReport

		if err := p.getJSON(experimentReportQuery(p.server, chunk), &report); err != nil {
			return nil, err
		}

		for _, row := range report.Graph {
			experiments = append(experiments, p.experimentFromRow(row))
		}
	}

	sort.Slice(experiments, func(i, j int) bool {
		return experiments[i].Accession < experiments[j].Accession
	})

	return experiments, nil
}

func (p *Portal) experimentFromRow(row experimentRow) *types.Experiment {
	exp := &types.Experiment{
		ID:          row.ID,
		Accession:   row.Accession,
		AssayTitle:  types.AssayType(row.AssayTitle),
		ControlType: row.ControlType,
	}

	for _, ctl := range row.PossibleControls {
		exp.PossibleControls = append(exp.PossibleControls, ctl.ID)
	}

	for _, rep := range row.Replicates {
		replicate := &types.Replicate{
			Organism: rep.Library.Biosample.Organism.ScientificName,
		}

		if rep.Antibody != nil {
			replicate.HasAntibody = true
			replicate.AntibodyTargets = rep.Antibody.Targets
		}

		exp.Replicates = append(exp.Replicates, replicate)
	}

	for _, links := range row.Files {
		exp.FileLinks = append(exp.FileLinks, p.link(links.Href, links.S3URI))
	}

	return exp
}

// Datasets returns the dataset ids whose files must be retrieved for the
// given experiments: the experiments themselves plus all their possible
// controls, deduplicated in order.
func Datasets(experiments []*types.Experiment) []string {
	var datasets []string

	seen := make(map[string]bool)

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}

		seen[id] = true

		datasets = append(datasets, id)
	}

	for _, exp := range experiments {
		add(exp.ID)
	}

	for _, exp := range experiments {
		for _, ctl := range exp.PossibleControls {
			add(ctl)
		}
	}

	return datasets
}

type fileReport struct {
	Graph []fileRow `json:"@graph"`
}

type fileRow struct {
	ID                         string `json:"@id"`
	Dataset                    string `json:"dataset"`
	FileFormat                 string `json:"file_format"`
	BiologicalReplicates       []int  `json:"biological_replicates"`
	PairedEnd                  string `json:"paired_end"`
	PairedWith                 string `json:"paired_with"`
	RunType                    string `json:"run_type"`
	MappedRunType              string `json:"mapped_run_type"`
	ReadLength                 int    `json:"read_length"`
	CroppedReadLength          int    `json:"cropped_read_length"`
	CroppedReadLengthTolerance int    `json:"cropped_read_length_tolerance"`
	Status                     string `json:"status"`
	Href                       string `json:"href"`
	S3URI                      string `json:"s3_uri"`
	Replicate                  struct {
		Status string `json:"status"`
	} `json:"replicate"`
}

// Files retrieves the fastq and bam files of the given datasets as one
// collection, keyed by download link or s3 URI.
func (p *Portal) Files(datasets []string) (*types.Files, error) {
	files := types.NewFiles()

	for _, chunk := range chunkStrings(datasets, chunkSize) {
		for _, format := range []string{types.FileFormatFastq, types.FileFormatBam} {
			var report fileReport

			if err := p.getJSON(fileReportQuery(p.server, chunk, format, p.statuses), &report); err != nil {
				return nil, err
			}

			for _, row := range report.Graph {
				files.Add(p.fileFromRow(row))
			}
		}
	}

	return files, nil
}

func (p *Portal) fileFromRow(row fileRow) *types.File {
	bioRep := 0
	if len(row.BiologicalReplicates) > 0 {
		bioRep = row.BiologicalReplicates[0]
	}

	return &types.File{
		ID:                         row.ID,
		Link:                       p.link(row.Href, row.S3URI),
		Dataset:                    row.Dataset,
		Format:                     row.FileFormat,
		Status:                     row.Status,
		ReplicateStatus:            row.Replicate.Status,
		BioRep:                     bioRep,
		PairedEnd:                  row.PairedEnd,
		PairedWith:                 row.PairedWith,
		RunType:                    types.RunType(row.RunType),
		ReadLength:                 row.ReadLength,
		MappedRunType:              types.RunType(row.MappedRunType),
		CroppedReadLength:          row.CroppedReadLength,
		CroppedReadLengthTolerance: row.CroppedReadLengthTolerance,
	}
}

// WildtypeControlIDs retrieves the ids of control experiments whose
// biosamples have no applied modifications.
func (p *Portal) WildtypeControlIDs() ([]string, error) {
	var report experimentReport

	if err := p.getJSON(wildtypeControlQuery(p.server), &report); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(report.Graph))

	for _, row := range report.Graph {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

func (p *Portal) getJSON(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	if p.apiKey != "" {
		req.SetBasicAuth(p.apiKey, p.secretKey)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrRequestFailed
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (p *Portal) link(href, s3URI string) string {
	if p.useS3 {
		return s3URI
	}

	return href
}

func chunkStrings(in []string, size int) [][]string {
	var chunks [][]string

	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}

		chunks = append(chunks, in[start:end])
	}

	return chunks
}
