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

package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvVarAPIKey    = "CHIPSEQ_AUTOMATION_API_KEY"
	EnvVarSecretKey = "CHIPSEQ_AUTOMATION_SECRET_KEY"
	EnvVarServer    = "CHIPSEQ_AUTOMATION_SERVER"
	EnvVarCreds     = "CHIPSEQ_AUTOMATION_CREDENTIALS_FILE"
	EnvVarSheet     = "CHIPSEQ_AUTOMATION_SPREADSHEET_ID"

	// DefaultServer is used when CHIPSEQ_AUTOMATION_SERVER is unset.
	DefaultServer = "https://www.encodeproject.org"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrPartialKeypair = Error("api key and secret key must be set together")
	ErrNoSheetConfig  = Error("credentials file and spreadsheet id must both be set for sheet access")
)

type Config struct {
	APIKey          string
	SecretKey       string
	Server          string
	CredentialsPath string
	SheetID         string
}

// FromEnv returns a new Config with properties populated from environment
// variables CHIPSEQ_AUTOMATION_*, where * is amongst: API_KEY, SECRET_KEY,
// SERVER, CREDENTIALS_FILE, and SPREADSHEET_ID.
//
// If these environment variables are defined in a file called .env (and not
// previously set in an environment variable), they will be automatically
// loaded.
//
// Optionally supply a directory to look for the .env file in.
//
// All the variables are optional: an unset server falls back to the
// production portal, an unset keypair means unauthenticated access to
// public data, and the credentials file and spreadsheet id are only needed
// when reading run lists from a Google sheet. Setting only half of the
// keypair is an error.
func FromEnv(dir ...string) (*Config, error) {
	var parentDir string
	if len(dir) == 1 {
		parentDir = dir[0] + string(os.PathSeparator)
	}

	godotenv.Load(parentDir + ".env")

	apiKey := os.Getenv(EnvVarAPIKey)
	secretKey := os.Getenv(EnvVarSecretKey)

	if (apiKey == "") != (secretKey == "") {
		return nil, ErrPartialKeypair
	}

	server := os.Getenv(EnvVarServer)
	if server == "" {
		server = DefaultServer
	}

	return &Config{
		APIKey:          apiKey,
		SecretKey:       secretKey,
		Server:          server,
		CredentialsPath: os.Getenv(EnvVarCreds),
		SheetID:         os.Getenv(EnvVarSheet),
	}, nil
}

// CheckSheetAccess returns an error unless both the service credentials
// path and the spreadsheet id are configured.
func (c *Config) CheckSheetAccess() error {
	if c.CredentialsPath == "" || c.SheetID == "" {
		return ErrNoSheetConfig
	}

	return nil
}
