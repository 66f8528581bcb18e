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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/config"
	"github.com/samsonasik/mezzio-hal/metadata"
	"github.com/samsonasik/mezzio-hal/registry"
)

const metadataYAML = `
hal:
  metadata_map:
    - kind: RouteBasedResource
      type: blog.Comment
      route: comment
      extractor: reflect
      resource_identifier: commentId
      route_params:
        postId: 7
      identifiers_to_placeholders:
        commentId: comment_id
      max_depth: 2
    - kind: URLBasedResource
      type: blog.About
      url: /about
      extractor: json
    - kind: RouteBasedCollection
      type: blog.Comments
      collection_relation: comments
      route: comments
      pagination_param: p
      pagination_param_type: placeholder
      query_string_arguments:
        sort: desc
    - kind: URLBasedCollection
      type: blog.Tags
      collection_relation: tags
      url: /tags
`

func TestDecodeMetadata(t *testing.T) {
	mds, err := config.DecodeMetadata(strings.NewReader(metadataYAML), config.DefaultMetadataKey)
	require.NoError(t, err)
	require.Len(t, mds, 4)

	comment, ok := mds[0].(*metadata.RouteBasedResource)
	require.True(t, ok, "got %T", mds[0])
	assert.Equal(t, "blog.Comment", comment.TypeID())
	assert.Equal(t, "comment", comment.Route())
	assert.Equal(t, "reflect", comment.Extractor())
	assert.Equal(t, "commentId", comment.ResourceIdentifier())
	assert.Equal(t, map[string]any{"postId": 7}, comment.RouteParams())
	assert.Equal(t, map[string]string{"commentId": "comment_id"}, comment.IdentifiersToPlaceholders())
	assert.Equal(t, 2, comment.MaxDepth())

	about, ok := mds[1].(*metadata.URLBasedResource)
	require.True(t, ok, "got %T", mds[1])
	assert.Equal(t, "/about", about.URL())
	assert.Equal(t, metadata.DefaultMaxDepth, about.MaxDepth())

	comments, ok := mds[2].(*metadata.RouteBasedCollection)
	require.True(t, ok, "got %T", mds[2])
	assert.Equal(t, "comments", comments.CollectionRelation())
	assert.Equal(t, "p", comments.PaginationParam())
	assert.Equal(t, apis.PaginationPlaceholder, comments.PaginationParamType())
	assert.Equal(t, map[string]any{"sort": "desc"}, comments.QueryStringArguments())

	tags, ok := mds[3].(*metadata.URLBasedCollection)
	require.True(t, ok, "got %T", mds[3])
	assert.Equal(t, metadata.DefaultPaginationParam, tags.PaginationParam())
	assert.Equal(t, apis.PaginationQuery, tags.PaginationParamType())
}

func TestDecodeMetadata_RootList(t *testing.T) {
	doc := `
- kind: URLBasedResource
  type: blog.About
  url: /about
  extractor: json
`
	mds, err := config.DecodeMetadata(strings.NewReader(doc), "")
	require.NoError(t, err)
	require.Len(t, mds, 1)
	assert.Equal(t, "blog.About", mds[0].TypeID())
}

func TestDecodeMetadata_MissingKeyIsEmpty(t *testing.T) {
	mds, err := config.DecodeMetadata(strings.NewReader("other: 1\n"), config.DefaultMetadataKey)
	require.NoError(t, err)
	assert.Empty(t, mds)
}

func TestDecodeMetadata_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "- kind: Hydrated\n  type: x\n", apis.ErrInvalidMetadataKind},
		{"missing kind", "- type: x\n", config.ErrInvalidConfig},
		{"missing route", "- kind: RouteBasedResource\n  type: x\n  extractor: reflect\n", config.ErrInvalidConfig},
		{"missing relation", "- kind: URLBasedCollection\n  type: x\n  url: /x\n", config.ErrInvalidConfig},
		{"bad param type", "- kind: URLBasedCollection\n  type: x\n  url: /x\n  collection_relation: x\n  pagination_param_type: header\n", config.ErrInvalidConfig},
		{"not a list", "hal:\n  metadata_map: 3\n", config.ErrInvalidConfig},
		{"entry not a mapping", "- 3\n", config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := ""
			if strings.HasPrefix(tc.doc, "hal:") {
				key = config.DefaultMetadataKey
			}
			_, err := config.DecodeMetadata(strings.NewReader(tc.doc), key)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMetadataFromViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(metadataYAML)))

	mds, err := config.MetadataFromViper(v, "")
	require.NoError(t, err)
	require.Len(t, mds, 4)

	comments, ok := mds[2].(*metadata.RouteBasedCollection)
	require.True(t, ok, "got %T", mds[2])
	assert.Equal(t, apis.PaginationPlaceholder, comments.PaginationParamType())

	comment := mds[0].(*metadata.RouteBasedResource)
	assert.Equal(t, 2, comment.MaxDepth())
	assert.Len(t, comment.RouteParams(), 1)
}

func TestLoadMetadataFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hal.json")
	doc := `{"hal": {"metadata_map": [
		{"kind": "URLBasedResource", "type": "blog.About", "url": "/about", "extractor": "json", "max_depth": 1}
	]}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	mds, err := config.LoadMetadataFile(path, config.DefaultMetadataKey)
	require.NoError(t, err)
	require.Len(t, mds, 1)
	about := mds[0].(*metadata.URLBasedResource)
	assert.Equal(t, 1, about.MaxDepth())
}

func TestLoadMetadataFile_Missing(t *testing.T) {
	_, err := config.LoadMetadataFile(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

type hydrated struct{ id string }

func (h hydrated) TypeID() string { return h.id }

func TestMetadataLoader_CustomKind(t *testing.T) {
	l := config.NewMetadataLoader()
	require.Error(t, l.RegisterMetadataFactory("", nil))

	err := l.RegisterMetadataFactory("Hydrated", func(decode config.Decoder) (apis.Metadata, error) {
		var e struct {
			Type string `yaml:"type"`
		}
		if err := decode(&e); err != nil {
			return nil, err
		}
		return hydrated{id: e.Type}, nil
	})
	require.NoError(t, err)
	assert.Contains(t, l.Kinds(), "Hydrated")

	mds, err := l.Decode(strings.NewReader("- kind: Hydrated\n  type: blog.Custom\n"), "")
	require.NoError(t, err)
	require.Len(t, mds, 1)
	assert.Equal(t, hydrated{id: "blog.Custom"}, mds[0])
}

func TestPopulate(t *testing.T) {
	mds, err := config.DecodeMetadata(strings.NewReader(metadataYAML), config.DefaultMetadataKey)
	require.NoError(t, err)

	mm := registry.New()
	require.NoError(t, config.Populate(mm, mds))
	assert.Equal(t, 4, mm.Count())
	assert.True(t, mm.Has("blog.Tags"))
}
