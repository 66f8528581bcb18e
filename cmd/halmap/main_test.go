/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMap = `
hal:
  metadata_map:
    - kind: RouteBasedResource
      type: blog.Post
      route: post
      extractor: reflect
    - kind: RouteBasedCollection
      type: blog.Posts
      collection_relation: posts
      route: posts
    - kind: URLBasedResource
      type: blog.About
      url: /about
      extractor: json
`

const badExtractorMap = `
hal:
  metadata_map:
    - kind: URLBasedResource
      type: blog.About
      url: /about
      extractor: hydrator
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, _, err := run(t, "validate", "-c", writeFile(t, validMap))
	require.NoError(t, err)
	assert.Contains(t, out, "3 metadata entries valid")
}

func TestValidateCommand_UnknownExtractor(t *testing.T) {
	_, errOut, err := run(t, "validate", "-c", writeFile(t, badExtractorMap))
	require.Error(t, err)
	assert.Contains(t, errOut, `blog.About: unknown extractor "hydrator"`)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, _, err := run(t, "validate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, _, err := run(t, "list", "-c", writeFile(t, validMap))
	require.NoError(t, err)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "blog.Post")
	assert.Contains(t, out, "route:post")
	assert.Contains(t, out, "RouteBasedCollection")
	assert.Contains(t, out, "/about")

	// sorted by type id
	assert.Less(t, bytes.Index([]byte(out), []byte("blog.About")), bytes.Index([]byte(out), []byte("blog.Post ")))
}
