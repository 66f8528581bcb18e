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

package config

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/metadata"
)

// DefaultMetadataKey is the configuration key holding the metadata list.
const DefaultMetadataKey = "hal.metadata_map"

// ErrInvalidConfig is returned for malformed metadata configuration.
var ErrInvalidConfig = errors.New("hal(config): invalid metadata configuration")

// Built-in metadata kind names, as written in configuration files.
const (
	KindRouteBasedResource   = "RouteBasedResource"
	KindURLBasedResource     = "URLBasedResource"
	KindRouteBasedCollection = "RouteBasedCollection"
	KindURLBasedCollection   = "URLBasedCollection"
)

// Decoder decodes one configuration entry into out. Struct fields are
// matched by their yaml tag.
type Decoder func(out any) error

// MetadataFactory builds metadata from one configuration entry.
type MetadataFactory func(decode Decoder) (apis.Metadata, error)

// MetadataLoader turns configuration entries into metadata. Each entry
// names its kind; the factory registered for that kind builds it.
type MetadataLoader struct {
	mu        sync.RWMutex
	factories map[string]MetadataFactory
}

// NewMetadataLoader returns a loader that knows the built-in kinds.
func NewMetadataLoader() *MetadataLoader {
	return &MetadataLoader{
		factories: map[string]MetadataFactory{
			KindRouteBasedResource:   routeBasedResourceFactory,
			KindURLBasedResource:     urlBasedResourceFactory,
			KindRouteBasedCollection: routeBasedCollectionFactory,
			KindURLBasedCollection:   urlBasedCollectionFactory,
		},
	}
}

// RegisterMetadataFactory registers (or replaces) the factory of kind.
func (l *MetadataLoader) RegisterMetadataFactory(kind string, f MetadataFactory) error {
	if strings.TrimSpace(kind) == "" {
		return errors.Wrap(apis.ErrInvalidMetadataKind, "empty kind name")
	}
	if f == nil {
		return errors.Wrapf(ErrInvalidConfig, "nil factory for kind %q", kind)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories[kind] = f
	return nil
}

// Kinds returns the registered kind names, sorted.
func (l *MetadataLoader) Kinds() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Sorted(maps.Keys(l.factories))
}

type entryHeader struct {
	Kind string `yaml:"kind"`
}

// build runs the factory for one entry.
func (l *MetadataLoader) build(idx int, decode Decoder) (apis.Metadata, error) {
	var hdr entryHeader
	if err := decode(&hdr); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "metadata entry %d: %v", idx, err)
	}
	if hdr.Kind == "" {
		return nil, errors.Wrapf(ErrInvalidConfig, "metadata entry %d: missing \"kind\"", idx)
	}

	l.mu.RLock()
	f, ok := l.factories[hdr.Kind]
	l.mu.RUnlock()
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(apis.ErrInvalidMetadataKind, "metadata entry %d: unknown kind %q", idx, hdr.Kind),
			"known kinds: %s", strings.Join(l.Kinds(), ", "))
	}

	md, err := f(decode)
	if err != nil {
		return nil, errors.Wrapf(err, "metadata entry %d (%s)", idx, hdr.Kind)
	}
	return md, nil
}

// Decode reads a YAML document and builds the metadata listed under key
// (a dotted path such as "hal.metadata_map"). An empty key expects the
// document root to be the list itself.
func (l *MetadataLoader) Decode(r io.Reader, key string) ([]apis.Metadata, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "hal(config): decoding YAML")
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if key != "" {
		for _, part := range strings.Split(key, ".") {
			node = mappingValue(node, part)
			if node == nil {
				return nil, nil
			}
		}
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Wrapf(ErrInvalidConfig, "%q must be a list", key)
	}

	out := make([]apis.Metadata, 0, len(node.Content))
	for i, entry := range node.Content {
		if entry.Kind != yaml.MappingNode {
			return nil, errors.Wrapf(ErrInvalidConfig, "metadata entry %d is not a mapping", i)
		}
		md, err := l.build(i, entry.Decode)
		if err != nil {
			return nil, err
		}
		out = append(out, md)
	}
	return out, nil
}

// FromViper builds the metadata listed under key in v.
//
// Viper folds map keys to lower case; static route parameters or
// placeholder mappings with mixed-case names should be loaded with Decode.
func (l *MetadataLoader) FromViper(v *viper.Viper, key string) ([]apis.Metadata, error) {
	if key == "" {
		key = DefaultMetadataKey
	}
	raw := v.Get(key)
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "%q must be a list, got %T", key, raw)
	}

	out := make([]apis.Metadata, 0, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "metadata entry %d is not a mapping", i)
		}
		md, err := l.build(i, mapDecoder(m))
		if err != nil {
			return nil, err
		}
		out = append(out, md)
	}
	return out, nil
}

// LoadFile reads a configuration file (any format viper supports: YAML,
// JSON, TOML, ...) and builds the metadata listed under key.
func (l *MetadataLoader) LoadFile(path, key string) ([]apis.Metadata, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "hal(config): reading %s", path)
	}
	return l.FromViper(v, key)
}

// DecodeMetadata is Decode on a loader with the built-in kinds.
func DecodeMetadata(r io.Reader, key string) ([]apis.Metadata, error) {
	return NewMetadataLoader().Decode(r, key)
}

// LoadMetadataFile is LoadFile on a loader with the built-in kinds.
func LoadMetadataFile(path, key string) ([]apis.Metadata, error) {
	return NewMetadataLoader().LoadFile(path, key)
}

// Populate adds every metadata entry to mm, in order.
func Populate(mm apis.MetadataMap, mds []apis.Metadata) error {
	for _, md := range mds {
		if err := mm.Add(md); err != nil {
			return err
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func mapDecoder(m map[string]any) Decoder {
	return func(out any) error {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "yaml",
			WeaklyTypedInput: true,
			Result:           out,
		})
		if err != nil {
			return err
		}
		return dec.Decode(m)
	}
}

type routeResourceEntry struct {
	Type                       string            `yaml:"type"`
	Route                      string            `yaml:"route"`
	Extractor                  string            `yaml:"extractor"`
	ResourceIdentifier         string            `yaml:"resource_identifier"`
	RouteIdentifierPlaceholder string            `yaml:"route_identifier_placeholder"`
	RouteParams                map[string]any    `yaml:"route_params"`
	IdentifiersToPlaceholders  map[string]string `yaml:"identifiers_to_placeholders"`
	MaxDepth                   *int              `yaml:"max_depth"`
}

type urlResourceEntry struct {
	Type      string `yaml:"type"`
	URL       string `yaml:"url"`
	Extractor string `yaml:"extractor"`
	MaxDepth  *int   `yaml:"max_depth"`
}

type collectionEntry struct {
	Type                 string         `yaml:"type"`
	CollectionRelation   string         `yaml:"collection_relation"`
	Route                string         `yaml:"route"`
	URL                  string         `yaml:"url"`
	PaginationParam      string         `yaml:"pagination_param"`
	PaginationParamType  string         `yaml:"pagination_param_type"`
	RouteParams          map[string]any `yaml:"route_params"`
	QueryStringArguments map[string]any `yaml:"query_string_arguments"`
}

func require(kind string, pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s requires %s", kind, strings.Join(missing, ", "))
	}
	return nil
}

func routeBasedResourceFactory(decode Decoder) (apis.Metadata, error) {
	var e routeResourceEntry
	if err := decode(&e); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if err := require(KindRouteBasedResource, "type", e.Type, "route", e.Route, "extractor", e.Extractor); err != nil {
		return nil, err
	}

	opts := []metadata.ResourceOption{
		metadata.WithRouteParams(e.RouteParams),
		metadata.WithIdentifiersToPlaceholders(e.IdentifiersToPlaceholders),
	}
	if e.ResourceIdentifier != "" {
		opts = append(opts, metadata.WithResourceIdentifier(e.ResourceIdentifier))
	}
	if e.RouteIdentifierPlaceholder != "" {
		opts = append(opts, metadata.WithRouteIdentifierPlaceholder(e.RouteIdentifierPlaceholder))
	}
	if e.MaxDepth != nil {
		opts = append(opts, metadata.WithMaxDepth(*e.MaxDepth))
	}
	return metadata.NewRouteBasedResource(e.Type, e.Route, e.Extractor, opts...), nil
}

func urlBasedResourceFactory(decode Decoder) (apis.Metadata, error) {
	var e urlResourceEntry
	if err := decode(&e); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if err := require(KindURLBasedResource, "type", e.Type, "url", e.URL, "extractor", e.Extractor); err != nil {
		return nil, err
	}

	md := metadata.NewURLBasedResource(e.Type, e.URL, e.Extractor)
	if e.MaxDepth != nil {
		md = md.WithMaxDepth(*e.MaxDepth)
	}
	return md, nil
}

func collectionOptions(e collectionEntry) ([]metadata.CollectionOption, error) {
	opts := []metadata.CollectionOption{metadata.WithPaginationParam(e.PaginationParam)}
	if e.PaginationParamType != "" {
		t, err := apis.ParsePaginationParamType(e.PaginationParamType)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
		}
		opts = append(opts, metadata.WithPaginationParamType(t))
	}
	return opts, nil
}

func routeBasedCollectionFactory(decode Decoder) (apis.Metadata, error) {
	var e collectionEntry
	if err := decode(&e); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if err := require(KindRouteBasedCollection, "type", e.Type, "collection_relation", e.CollectionRelation, "route", e.Route); err != nil {
		return nil, err
	}
	opts, err := collectionOptions(e)
	if err != nil {
		return nil, err
	}
	return metadata.NewRouteBasedCollection(e.Type, e.CollectionRelation, e.Route, e.RouteParams, e.QueryStringArguments, opts...), nil
}

func urlBasedCollectionFactory(decode Decoder) (apis.Metadata, error) {
	var e collectionEntry
	if err := decode(&e); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if err := require(KindURLBasedCollection, "type", e.Type, "collection_relation", e.CollectionRelation, "url", e.URL); err != nil {
		return nil, err
	}
	opts, err := collectionOptions(e)
	if err != nil {
		return nil, err
	}
	return metadata.NewURLBasedCollection(e.Type, e.CollectionRelation, e.URL, opts...), nil
}

// MetadataFromViper is FromViper on a loader with the built-in kinds.
func MetadataFromViper(v *viper.Viper, key string) ([]apis.Metadata, error) {
	return NewMetadataLoader().FromViper(v, key)
}
