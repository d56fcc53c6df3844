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

package portal

import (
	"strings"

	"github.com/wtsi-hgi/chipseq-automation/types"
)

// experimentReportQuery builds the report view URL for the given experiment
// accessions, selecting only the fields input generation needs.
func experimentReportQuery(server string, accessions []string) string {
	return server + "/report/?type=Experiment" +
		"&accession=" + strings.Join(accessions, "&accession=") +
		"&field=@id" +
		"&field=accession" +
		"&field=assay_title" +
		"&field=control_type" +
		"&field=possible_controls" +
		"&field=replicates.antibody.targets" +
		"&field=files.s3_uri" +
		"&field=files.href" +
		"&field=replicates.library.biosample.organism.scientific_name" +
		"&limit=all" +
		"&format=json"
}

// fileReportQuery builds the report view URL for the fastq or bam files of
// the given datasets. Bams are restricted to ENCODE4 alignments; legacy
// hg19/mm9 assemblies are excluded for both formats.
func fileReportQuery(server string, datasets []string, format string, statuses []string) string {
	awardParam := ""
	outputTypeParam := "&output_type=reads"

	if format == types.FileFormatBam {
		awardParam = "&award.rfa=ENCODE4"
		outputTypeParam = "&output_type=alignments&output_type=redacted+alignments"
	}

	return server + "/report/?type=File" +
		"&dataset=" + strings.Join(datasets, "&dataset=") +
		statusParams(statuses) +
		awardParam +
		"&assembly%21=hg19" +
		"&assembly%21=mm9" +
		"&file_format=" + format +
		outputTypeParam +
		"&field=@id" +
		"&field=dataset" +
		"&field=file_format" +
		"&field=biological_replicates" +
		"&field=paired_end" +
		"&field=paired_with" +
		"&field=run_type" +
		"&field=mapped_run_type" +
		"&field=read_length" +
		"&field=cropped_read_length" +
		"&field=cropped_read_length_tolerance" +
		"&field=status" +
		"&field=s3_uri" +
		"&field=href" +
		"&field=replicate.status" +
		"&limit=all" +
		"&format=json"
}

// wildtypeControlQuery builds the search URL for control experiments whose
// biosamples carry no applied genomic modifications.
func wildtypeControlQuery(server string) string {
	return server + "/search/?type=Experiment" +
		"&assay_title=Control+ChIP-seq" +
		"&replicates.library.biosample.applied_modifications%21=%2A" +
		"&limit=all" +
		"&format=json"
}

func statusParams(statuses []string) string {
	var sb strings.Builder

	for _, status := range statuses {
		sb.WriteString("&status=")
		sb.WriteString(strings.ReplaceAll(status, " ", "+"))
	}

	return sb.String()
}
