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

// Package caper generates the caper submit commands that launch pipeline
// runs from our generated input files.
package caper

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	scriptBasename = "caper_submit"
	scriptSuffix   = ".sh"
	inputSuffix    = ".json"

	userPerm = 0755
)

// Caper represents how pipeline runs will be submitted: the WDL defining the
// pipeline, and the Google Cloud path the input files will have been uploaded
// to by the time the commands are run.
type Caper struct {
	WdlPath string
	GCPath  string
}

// SubmitCommand returns the caper submit command for the run with the given
// description, followed by a 1 second sleep so that submissions in a batch
// script don't race each other. The optional custom message is appended to
// the submission name.
func (c *Caper) SubmitCommand(description, customMessage string) string {
	gc := c.GCPath
	if !strings.HasSuffix(gc, "/") {
		gc += "/"
	}

	name := description
	if customMessage != "" {
		name += "_" + customMessage
	}

	return "caper submit " + c.WdlPath + " -i " + gc + description + inputSuffix +
		" -s " + name + "\nsleep 1\n"
}

// Script returns the contents of a submission script for the runs with the
// given descriptions, paired with their custom messages. An empty slice
// produces an empty script.
func (c *Caper) Script(descriptions, customMessages []string) string {
	var sb strings.Builder

	for i, description := range descriptions {
		var message string
		if i < len(customMessages) {
			message = customMessages[i]
		}

		sb.WriteString(c.SubmitCommand(description, message))
	}

	return sb.String()
}

// ScriptPath returns the path the submission script will be written to in
// the given directory. The optional message is appended to the script's
// basename.
func ScriptPath(dir, message string) string {
	name := scriptBasename
	if message != "" {
		name += "_" + message
	}

	return filepath.Join(dir, name+scriptSuffix)
}

// WriteScript writes the given script contents to ScriptPath(dir, message)
// and returns that path. Does nothing and returns an empty path if the
// script is empty.
func WriteScript(dir, message, script string) (string, error) {
	if script == "" {
		return "", nil
	}

	path := ScriptPath(dir, message)

	return path, os.WriteFile(path, []byte(script), userPerm)
}
