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

package hal

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/builder"
	"github.com/samsonasik/mezzio-hal/config"
	"github.com/samsonasik/mezzio-hal/extractor"
	"github.com/samsonasik/mezzio-hal/link"
	"github.com/samsonasik/mezzio-hal/registry"
	"github.com/samsonasik/mezzio-hal/resource"
	"github.com/samsonasik/mezzio-hal/strategy"
)

var (
	// ErrNilStrategies is returned when a builder returns a nil strategy registry.
	ErrNilStrategies = errors.New("hal: builder returned nil strategy registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("hal: builder returned nil resolver")
)

// Generator turns Go values into HAL resources using the metadata map, the
// strategy registry and its collaborators.
//
// Reads are lock-free: every call works on one immutable snapshot of
// configuration, resolver and strategies. Writers (AddStrategy, SetConfig,
// SetBuilder, SetResolver) build a new snapshot and swap it in, so they are
// safe to call while generation is in flight.
type Generator struct {
	mm         apis.MetadataMap
	links      apis.LinkGenerator
	extractors apis.ExtractorRegistry
	logger     *zap.Logger

	// buildMu serializes writers.
	buildMu sync.Mutex
	st      atomic.Pointer[state]
}

// Ensure Generator implements apis.Generator.
var _ apis.Generator = (*Generator)(nil)

type state struct {
	// cfg is the generation configuration.
	cfg apis.Config
	// bld builds strategies and resolver.
	bld apis.Builder
	// strategies maps metadata kinds to strategies.
	strategies apis.StrategyRegistry
	// res is the resolver.
	res apis.Resolver
	// pres indicates whether the resolver is pinned (never rebuilt).
	pres bool
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	cfg    apis.Config
	bld    apis.Builder
	res    apis.Resolver
	logger *zap.Logger
}

// WithConfig sets the generation configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder sets the builder of strategies and resolver.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithResolver pins a resolver; configuration changes no longer rebuild it.
func WithResolver(res apis.Resolver) Option {
	return func(o *options) { o.res = res }
}

// WithLogger sets the logger. Generation logs at debug level only.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New constructs a Generator. A nil mm starts an empty metadata map, a nil
// links uses relative URLs over an empty route table and a nil extractors
// uses extractor.NewDefault.
func New(mm apis.MetadataMap, links apis.LinkGenerator, extractors apis.ExtractorRegistry, opts ...Option) *Generator {
	o := options{
		cfg:    config.DefaultConfig(),
		bld:    builder.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if mm == nil {
		mm = registry.New()
	}
	if links == nil {
		links = link.NewGenerator(link.NewRelativeURLGenerator(link.NewRoutes()))
	}
	if extractors == nil {
		extractors = extractor.NewDefault()
	}

	g := &Generator{
		mm:         mm,
		links:      links,
		extractors: extractors,
		logger:     o.logger,
	}

	s := &state{cfg: o.cfg, bld: o.bld, res: o.res, pres: o.res != nil}
	s.strategies = o.bld.BuildStrategies(o.cfg, nil)
	if !s.pres {
		s.res = o.bld.BuildResolver(o.cfg, mm, nil)
	}
	mustState(s)
	g.st.Store(s)
	return g
}

// FromArray builds a resource from data with selfURI as its only link. The
// data mapping is used as given. An empty selfURI adds no link.
func (g *Generator) FromArray(data *resource.Fields, selfURI string) *resource.Resource {
	if selfURI == "" {
		return resource.New(data)
	}
	return resource.New(data, resource.NewLink(resource.RelSelf, selfURI))
}

// FromObject builds the resource of instance for a top-level request.
func (g *Generator) FromObject(instance any, req *http.Request) (*resource.Resource, error) {
	return g.FromObjectAt(instance, req, 0)
}

// FromObjectAt builds the resource of instance at the given nesting depth.
// Strategies call it to embed children at depth+1. A nil req is replaced by
// an empty GET request.
func (g *Generator) FromObjectAt(instance any, req *http.Request, depth int) (*resource.Resource, error) {
	if req == nil {
		req = emptyRequest()
	}
	s := g.st.Load()

	md, err := s.res.Resolve(instance)
	if err != nil {
		return nil, err
	}

	kind := apis.KindOf(md)
	strat, ok := s.strategies.Lookup(kind)
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(apis.ErrStrategyNotFound, "%s (type %q)", apis.KindName(kind), md.TypeID()),
			"register a strategy for this kind with AddStrategy")
	}

	if s.cfg.DetectCycles {
		if req, err = enterPath(req, md.TypeID(), instance); err != nil {
			return nil, err
		}
	}

	g.logger.Debug("generating resource",
		zap.String("type", md.TypeID()),
		zap.String("kind", apis.KindName(kind)),
		zap.Int("depth", depth),
	)
	return strat.CreateResource(instance, md, g, req, depth)
}

// AddStrategy registers strategy for a metadata kind, replacing any
// strategy registered for it. kind must be a concrete type implementing
// apis.Metadata and strategy must implement apis.Strategy.
func (g *Generator) AddStrategy(kind reflect.Type, strat any) error {
	if err := strategy.ValidateKind(kind); err != nil {
		return err
	}
	s, ok := strat.(apis.Strategy)
	if !ok || strat == nil {
		return errors.Wrapf(apis.ErrInvalidStrategy, "%T does not implement apis.Strategy", strat)
	}
	if isNilStrategy(strat) {
		return errors.Wrapf(apis.ErrInvalidStrategy, "nil %T", strat)
	}

	g.buildMu.Lock()
	defer g.buildMu.Unlock()

	old := g.st.Load()
	next := old.bld.BuildStrategies(old.cfg, old.strategies)
	if next == nil {
		panic(ErrNilStrategies)
	}
	if err := next.Register(kind, s); err != nil {
		return err
	}

	g.st.Store(&state{
		cfg:        old.cfg,
		bld:        old.bld,
		strategies: next,
		res:        old.res,
		pres:       old.pres,
	})
	g.logger.Debug("strategy registered", zap.String("kind", apis.KindName(kind)))
	return nil
}

// SetConfig replaces the configuration and rebuilds strategies and (unless
// pinned) the resolver.
func (g *Generator) SetConfig(cfg apis.Config) {
	g.buildMu.Lock()
	defer g.buildMu.Unlock()

	old := g.st.Load()
	g.rebuild(old, cfg, old.bld)
}

// SetBuilder replaces the builder and rebuilds strategies and (unless
// pinned) the resolver with it.
func (g *Generator) SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	g.buildMu.Lock()
	defer g.buildMu.Unlock()

	old := g.st.Load()
	g.rebuild(old, old.cfg, b)
}

// SetResolver pins res as the resolver. A nil res unpins and rebuilds the
// resolver from the builder.
func (g *Generator) SetResolver(res apis.Resolver) {
	g.buildMu.Lock()
	defer g.buildMu.Unlock()

	old := g.st.Load()
	next := &state{
		cfg:        old.cfg,
		bld:        old.bld,
		strategies: old.strategies,
		res:        res,
		pres:       res != nil,
	}
	if !next.pres {
		next.res = old.bld.BuildResolver(old.cfg, g.mm, old.res)
	}
	mustState(next)
	g.st.Store(next)
}

// rebuild must be called with buildMu held.
func (g *Generator) rebuild(old *state, cfg apis.Config, b apis.Builder) {
	next := &state{
		cfg:        cfg,
		bld:        b,
		strategies: b.BuildStrategies(cfg, old.strategies),
		res:        old.res,
		pres:       old.pres,
	}
	if !old.pres {
		next.res = b.BuildResolver(cfg, g.mm, old.res)
	}
	mustState(next)
	g.st.Store(next)
}

// MetadataMap returns the metadata map.
func (g *Generator) MetadataMap() apis.MetadataMap { return g.mm }

// Resolver returns the current resolver.
func (g *Generator) Resolver() apis.Resolver { return g.st.Load().res }

// Strategies returns the current strategy registry. It is a snapshot:
// register through AddStrategy.
func (g *Generator) Strategies() apis.StrategyRegistry { return g.st.Load().strategies }

// Extractors returns the extractor registry.
func (g *Generator) Extractors() apis.ExtractorRegistry { return g.extractors }

// LinkGenerator returns the link generator.
func (g *Generator) LinkGenerator() apis.LinkGenerator { return g.links }

// Config returns the current configuration.
func (g *Generator) Config() apis.Config { return g.st.Load().cfg }

// Builder returns the current builder.
func (g *Generator) Builder() apis.Builder { return g.st.Load().bld }

// IsResolverPinned reports whether the resolver is pinned.
func (g *Generator) IsResolverPinned() bool { return g.st.Load().pres }

// Logger returns the logger.
func (g *Generator) Logger() *zap.Logger { return g.logger }

func mustState(s *state) {
	if s.strategies == nil {
		panic(ErrNilStrategies)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
}

func emptyRequest() *http.Request {
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: "/"},
		Header: http.Header{},
	}
	return req.WithContext(context.Background())
}

// isNilStrategy reports typed nils such as (*T)(nil) or a nil StrategyFunc.
func isNilStrategy(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
