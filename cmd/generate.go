/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Author: Sendu Bala <sb10@sanger.ac.uk>
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

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/chipseq-automation/caper"
	"github.com/wtsi-hgi/chipseq-automation/chip"
	"github.com/wtsi-hgi/chipseq-automation/config"
	"github.com/wtsi-hgi/chipseq-automation/portal"
	"github.com/wtsi-hgi/chipseq-automation/runlist"
	"github.com/wtsi-hgi/chipseq-automation/sheets"
	"github.com/wtsi-hgi/chipseq-automation/types"
)

const (
	ErrOneInputSource = Error("exactly one of --infile, --accessions and --sheet is required")

	dirPerm = 0755
)

// options for this cmd.
var (
	generateInfile           string
	generateAccessions       string
	generateSheet            bool
	generateOutputPath       string
	generateGCPath           string
	generateWdl              string
	generateServer           string
	generateUseS3URIs        bool
	generateAlignOnly        bool
	generateCustomMessages   []string
	generateScriptMessage    string
	generateCropLengths      []int
	generateMultipleControls []bool
	generateForceSingleEnd   []bool
	generateRedacted         []bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate pipeline input files.",
	Long: `Generate pipeline input files.

Given experiment accessions, this command retrieves their metadata from the
ENCODE portal and writes an input.json per experiment for the ENCODE ChIP-seq
pipeline, along with a caper_submit*.sh script of caper submit commands.

Accessions come from exactly one of three sources. --infile takes a tab
separated file with a header line naming accession and align_only columns,
and optionally custom_message, custom_crop_length, multiple_controls,
force_se and redacted columns. --accessions takes a comma separated list of
accessions, with per-accession options given via the other flags: each of
--custom-message, --custom-crop-length, --multiple-controls, --force-se and
--redacted may be given once to apply to all accessions, or once per
accession. --sheet reads the "runs" sheet of the Google sheet configured via
CHIPSEQ_AUTOMATION_SPREADSHEET_ID, which has the same columns as --infile.

Experiments whose metadata is insufficient or contradictory are skipped with
a warning; input files are still written for the rest.

An example command line could look like this:
$ chipseq-automation generate --accessions ENCSR000AAA,ENCSR000AAB \
    --align-only -o /output/dir -g gs://bucket/inputs --wdl chip.wdl
`,
	Run: func(_ *cobra.Command, _ []string) {
		c, err := config.FromEnv()
		if err != nil {
			die(err)
		}

		runs := gatherRuns(c)

		err = createDirIfNotExist(generateOutputPath)
		if err != nil {
			die(err)
		}

		results := resolveRuns(c, runs)

		for _, accession := range results.Errored() {
			for _, tag := range results.Errors[accession] {
				warnf("%s: %s", accession, tag.Message())
			}
		}

		writeOutputs(results, runs)
	},
}

func gatherRuns(c *config.Config) []types.RunOptions {
	sources := 0
	for _, set := range []bool{generateInfile != "", generateAccessions != "", generateSheet} {
		if set {
			sources++
		}
	}

	if sources != 1 {
		die(ErrOneInputSource)
	}

	var (
		runs []types.RunOptions
		err  error
	)

	switch {
	case generateInfile != "":
		runs, err = runlist.ParseFile(generateInfile)
	case generateAccessions != "":
		runs, err = runlist.FromArgs(generateAccessions, runlist.Args{
			AlignOnly:        generateAlignOnly,
			CustomMessages:   generateCustomMessages,
			CropLengths:      generateCropLengths,
			MultipleControls: generateMultipleControls,
			ForceSingleEnd:   generateForceSingleEnd,
			Redacted:         generateRedacted,
		})
	default:
		runs, err = sheetRuns(c)
	}

	if err != nil {
		die(err)
	}

	return runs
}

func sheetRuns(c *config.Config) ([]types.RunOptions, error) {
	err := c.CheckSheetAccess()
	if err != nil {
		return nil, err
	}

	sc, err := sheets.ServiceCredentialsFromConfig(c)
	if err != nil {
		return nil, err
	}

	s, err := sheets.New(sc)
	if err != nil {
		return nil, err
	}

	return s.RunOptions(c.SheetID)
}

func resolveRuns(c *config.Config, runs []types.RunOptions) *chip.Results {
	p := portal.New(c, portal.Options{
		Server:    generateServer,
		UseS3URIs: generateUseS3URIs,
	})

	accessions := make([]string, len(runs))
	for i, run := range runs {
		accessions[i] = run.Accession
	}

	infof("retrieving metadata for %d experiments", len(accessions))

	experiments, err := p.Experiments(accessions)
	if err != nil {
		die(err)
	}

	wildtype, err := p.WildtypeControlIDs()
	if err != nil {
		die(err)
	}

	files, err := p.Files(portal.Datasets(experiments))
	if err != nil {
		die(err)
	}

	resolver := chip.New(experiments, files, wildtype, chip.Options{
		LinkPrefix: p.LinkPrefix(),
	})

	results, err := resolver.Resolve(runs)
	if err != nil {
		die(err)
	}

	return results
}

func writeOutputs(results *chip.Results, runs []types.RunOptions) {
	messages := make(map[string]string, len(runs))
	for _, run := range runs {
		messages[run.Accession] = run.CustomMessage
	}

	cpr := &caper.Caper{WdlPath: generateWdl, GCPath: generateGCPath}

	var descriptions, runMessages []string //nolint:prealloc

	for _, accession := range results.Accessions() {
		record := results.Records[accession]

		path, err := record.Write(generateOutputPath)
		if err != nil {
			die(err)
		}

		cliPrint("%s\n", path)

		descriptions = append(descriptions, record.Description)
		runMessages = append(runMessages, messages[accession])
	}

	scriptPath, err := caper.WriteScript(generateOutputPath, generateScriptMessage,
		cpr.Script(descriptions, runMessages))
	if err != nil {
		die(err)
	}

	if scriptPath != "" {
		infof("wrote %d input files and submission script %s", len(descriptions), scriptPath)
	} else {
		info("no input files written")
	}
}

func createDirIfNotExist(dir string) error {
	if dir == "" {
		return nil
	}

	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return err
		}

		return os.MkdirAll(dir, dirPerm)
	}

	return nil
}

func init() {
	RootCmd.AddCommand(generateCmd)

	// flags specific to this sub-command
	generateCmd.Flags().StringVarP(&generateInfile, "infile", "i", "",
		"path to TSV file of accessions to process")
	generateCmd.Flags().StringVar(&generateAccessions, "accessions", "",
		"comma separated list of accessions to process")
	generateCmd.Flags().BoolVar(&generateSheet, "sheet", false,
		"read accessions from the configured Google sheet")
	generateCmd.Flags().StringVarP(&generateOutputPath, "outputpath", "o", "",
		"output directory, defaulting to the current directory")
	generateCmd.Flags().StringVarP(&generateGCPath, "gcpath", "g", "",
		"Google Cloud path the input files will be uploaded to, used in the caper submit commands")
	generateCmd.Flags().StringVar(&generateWdl, "wdl", "",
		"path to the pipeline's .wdl file, used in the caper submit commands")
	generateCmd.Flags().StringVarP(&generateServer, "server", "s", "",
		"full URL of the metadata server, overriding the configured one")
	generateCmd.Flags().BoolVar(&generateUseS3URIs, "use-s3-uris", false,
		"use s3 URIs for file links instead of portal download links")
	generateCmd.Flags().BoolVar(&generateAlignOnly, "align-only", false,
		"end the pipeline after the alignment step")
	generateCmd.Flags().StringSliceVar(&generateCustomMessages, "custom-message", nil,
		"additional string appended to the caper submission names")
	generateCmd.Flags().StringVar(&generateScriptMessage, "caper-commands-file-message", "",
		"additional string appended to the caper script's file name")
	generateCmd.Flags().IntSliceVar(&generateCropLengths, "custom-crop-length", nil,
		"custom value for the crop length")
	generateCmd.Flags().BoolSliceVar(&generateMultipleControls, "multiple-controls", nil,
		"assume multiple controls should be used")
	generateCmd.Flags().BoolSliceVar(&generateForceSingleEnd, "force-se", nil,
		"map as single-ended regardless of input fastqs")
	generateCmd.Flags().BoolSliceVar(&generateRedacted, "redacted", nil,
		"control experiments have redacted alignments")
}
