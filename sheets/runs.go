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

package sheets

import "github.com/wtsi-hgi/chipseq-automation/types"

const runsSheetName = "runs"

// RunOptions reads the "runs" sheet from the sheet with the given id and
// extracts one types.RunOptions per row. The sheet must have accession and
// align_only columns; custom_message, custom_crop_length, multiple_controls,
// force_se and redacted columns are optional and default to their zero
// values. Rows with a blank accession are skipped. The returned runs are
// deduplicated by accession and sorted.
func (s *Sheets) RunOptions(sheetID string) ([]types.RunOptions, error) {
	sheet, err := s.Read(sheetID, runsSheetName)
	if err != nil {
		return nil, err
	}

	return runsFromSheet(sheet)
}

func runsFromSheet(sheet *Sheet) ([]types.RunOptions, error) {
	if sheet == nil || len(sheet.Rows) == 0 {
		return nil, ErrNoData
	}

	required, err := sheet.Columns("accession", "align_only")
	if err != nil {
		return nil, err
	}

	messages, _ := sheet.Column("custom_message")
	cropLengths, _ := sheet.Column("custom_crop_length")
	multiples, _ := sheet.Column("multiple_controls")
	forceSEs, _ := sheet.Column("force_se")
	redacteds, _ := sheet.Column("redacted")

	runs := make([]types.RunOptions, 0, len(required))

	c := converter{}

	for i, row := range required {
		if row[0] == "" {
			continue
		}

		runs = append(runs, types.RunOptions{
			Accession:        row[0],
			AlignOnly:        c.ToBool(row[1]),
			CustomMessage:    cell(messages, i),
			CropLength:       c.ToInt(cell(cropLengths, i)),
			MultipleControls: c.ToBool(cell(multiples, i)),
			ForceSingleEnd:   c.ToBool(cell(forceSEs, i)),
			Redacted:         c.ToBool(cell(redacteds, i)),
		})
	}

	if c.Err != nil {
		return nil, c.Err
	}

	return types.NormalizeRunOptions(runs), nil
}

func cell(col []string, i int) string {
	if i < len(col) {
		return col[i]
	}

	return ""
}
