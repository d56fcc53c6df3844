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

package caper

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCaper(t *testing.T) {
	Convey("Given a Caper, you can generate submit commands", t, func() {
		c := &Caper{WdlPath: "chip.wdl", GCPath: "gs://bucket/inputs"}

		desc := "ENCSR000AAA_PE_no_crop_2rep_tf_peakcall"

		cmd := c.SubmitCommand(desc, "")
		So(cmd, ShouldEqual,
			"caper submit chip.wdl -i gs://bucket/inputs/"+desc+".json -s "+desc+"\nsleep 1\n")

		Convey("A custom message is appended to the submission name", func() {
			cmd := c.SubmitCommand(desc, "rerun")
			So(cmd, ShouldEqual,
				"caper submit chip.wdl -i gs://bucket/inputs/"+desc+".json -s "+desc+"_rerun\nsleep 1\n")
		})

		Convey("A trailing slash on the GC path is not doubled", func() {
			c.GCPath = "gs://bucket/inputs/"
			cmd := c.SubmitCommand(desc, "")
			So(cmd, ShouldContainSubstring, " -i gs://bucket/inputs/"+desc+".json ")
		})

		Convey("Scripts concatenate a command per description", func() {
			script := c.Script([]string{"a", "b"}, []string{"", "rerun"})
			So(script, ShouldEqual,
				c.SubmitCommand("a", "")+c.SubmitCommand("b", "rerun"))

			So(c.Script(nil, nil), ShouldBeBlank)
		})
	})
}

func TestWriteScript(t *testing.T) {
	Convey("You can write a submission script to a directory", t, func() {
		dir := t.TempDir()

		path, err := WriteScript(dir, "", "caper submit ...\n")
		So(err, ShouldBeNil)
		So(path, ShouldEqual, filepath.Join(dir, "caper_submit.sh"))

		contents, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(string(contents), ShouldEqual, "caper submit ...\n")

		Convey("A message is appended to the script's name", func() {
			path, err := WriteScript(dir, "batch2", "caper submit ...\n")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(dir, "caper_submit_batch2.sh"))
		})

		Convey("An empty script is not written", func() {
			path, err := WriteScript(dir, "", "")
			So(err, ShouldBeNil)
			So(path, ShouldBeBlank)
		})
	})
}
