package reflection

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"wirepath/codable"
	"wirepath/internal/probe"
	"wirepath/options"
	"wirepath/sentinel"
)

var errNoSchema = errors.New("schema is not set, use SchemaOf")

// Default is the process-wide reflector used by the package-level functions.
var Default = mustNew(DefaultConfig())

// Reflector discovers coding paths by driving decode passes. It caches the
// properties it locates; the cache grows until Reset.
type Reflector struct {
	cfg    Config
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[*Property]ReflectedProperty

	passes atomic.Int64
}

// New returns a Reflector with an empty cache.
func New(cfg Config) (*Reflector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Reflector{
		cfg:    cfg,
		logger: logger,
		cache:  make(map[*Property]ReflectedProperty),
	}, nil
}

func mustNew(cfg Config) *Reflector {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}

	return r
}

// Catalog returns the sentinel catalog the reflector probes with.
func (r *Reflector) Catalog() *sentinel.Catalog {
	return r.cfg.Catalog
}

// MaxDepth is the last depth bound Locate tries.
func (r *Reflector) MaxDepth() int {
	return r.cfg.MaxDepth
}

// Passes counts the decode passes run since construction.
func (r *Reflector) Passes() int64 {
	return r.passes.Load()
}

// Reset empties the property cache, e.g. after a schema changed.
func (r *Reflector) Reset() {
	r.mu.Lock()
	r.cache = make(map[*Property]ReflectedProperty)
	r.mu.Unlock()
}

// Enumerate returns the properties nested exactly depth levels below the
// root of s, depth 0 being the root's own fields. A single pass is enough:
// every field is visited whatever the activation.
func (r *Reflector) Enumerate(s Schema, depth int) ([]ReflectedProperty, error) {
	_, ctx, err := r.pass(s, 0, r.cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	props := fromProbe(ctx.ChildrenAt(depth))

	if r.cfg.Trace.Has(options.TraceResults) {
		r.logger.Debug("enumerated properties", "schema", s, "depth", depth, "count", len(props))
	}

	return props, nil
}

// Probe runs a single pass in which leaf request number activation receives
// the left sentinel and containers below maxDepth read as null.
func (r *Reflector) Probe(s Schema, activation, maxDepth int) (PassResult, error) {
	root, ctx, err := r.pass(s, activation, maxDepth)
	if err != nil {
		return PassResult{}, err
	}

	activated, active := ctx.Activated()

	return PassResult{
		Instance:   root,
		Activated:  activated,
		Active:     active,
		Ordinals:   ctx.Ordinals(),
		Properties: fromProbe(ctx.Properties()),
	}, nil
}

// Activation returns the ordinal whose pass, bounded by maxDepth, activates
// path. It reports false when every ordinal was tried without a match.
func (r *Reflector) Activation(s Schema, path codable.Path, maxDepth int) (int, bool, error) {
	for activation := 0; ; activation++ {
		_, ctx, err := r.pass(s, activation, maxDepth)
		if err != nil {
			return 0, false, err
		}

		activated, active := ctx.Activated()
		if !active {
			return 0, false, nil
		}

		if activated.Equal(path) {
			return activation, true, nil
		}
	}
}

// Locate resolves p to its coding path. It reports false when p is not
// reached within the configured depth. Results are cached per Property.
//
// For each depth bound from 0 upward, passes activate leaf 0, 1, 2, ... until
// one activates nothing. After each pass the getter reads the synthetic
// instance; when it yields the left sentinel of the property type, the
// activated path is the property's path.
func (r *Reflector) Locate(p *Property) (ReflectedProperty, bool, error) {
	if prop, ok := r.cached(p); ok {
		if r.cfg.Trace.Has(options.TraceCache) {
			r.logger.Debug("property cache hit", "property", p, "path", prop.Path.String())
		}

		return prop, true, nil
	}

	pair, err := r.cfg.Catalog.Pair(p.value)
	if err != nil {
		return ReflectedProperty{}, false, fmt.Errorf("locate %s: %w", p, err)
	}

	for maxDepth := 0; maxDepth <= r.cfg.MaxDepth; maxDepth++ {
		for activation := 0; ; activation++ {
			root, ctx, err := r.pass(p.schema, activation, maxDepth)
			if err != nil {
				return ReflectedProperty{}, false, err
			}

			path, active := ctx.Activated()
			if !active {
				break
			}

			value, ok := p.get(root)
			if !ok {
				continue
			}

			isLeft, err := pair.IsLeft(value)
			if err != nil {
				if mismatch := new(sentinel.MismatchError); errors.As(err, &mismatch) {
					continue
				}

				return ReflectedProperty{}, false, fmt.Errorf("locate %s: %w", p, err)
			}

			if isLeft {
				prop := r.store(p, ReflectedProperty{Type: p.value, Path: path})

				if r.cfg.Trace.Has(options.TraceResults) {
					r.logger.Debug("property located", "property", p, "path", prop.Path.String(),
						"max_depth", maxDepth, "activation", activation)
				}

				return prop, true, nil
			}
		}
	}

	if r.cfg.Trace.Has(options.TraceResults) {
		r.logger.Debug("property not found", "property", p, "max_depth", r.cfg.MaxDepth)
	}

	return ReflectedProperty{}, false, nil
}

func (r *Reflector) pass(s Schema, activation, maxDepth int) (codable.Decodable, *probe.Context, error) {
	if s.alloc == nil {
		return nil, nil, errNoSchema
	}

	r.passes.Add(1)

	ctx := probe.NewContext(r.cfg.Catalog, activation, maxDepth)
	root := s.alloc()

	if err := probe.Run(root, ctx); err != nil {
		return nil, nil, fmt.Errorf("probe %s: %w", s, err)
	}

	if r.cfg.Trace.Has(options.TracePasses) {
		activated, active := ctx.Activated()
		r.logger.Debug("decode pass", "schema", s, "activation", activation, "max_depth", ctx.MaxDepth(),
			"active", active, "activated", activated.String(), "ordinals", ctx.Ordinals())
	}

	return root, ctx, nil
}

func (r *Reflector) cached(p *Property) (ReflectedProperty, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prop, ok := r.cache[p]

	return prop, ok
}

// store inserts prop unless another goroutine got there first, and returns the cached value.
func (r *Reflector) store(p *Property, prop ReflectedProperty) ReflectedProperty {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.cache[p]; ok {
		return existing
	}

	r.cache[p] = prop

	if r.cfg.Trace.Has(options.TraceCache) {
		r.logger.Debug("property cached", "property", p, "path", prop.Path.String())
	}

	return prop
}

// Properties enumerates the properties of T at depth using the Default reflector.
func Properties[T any, PT Decodable[T]](depth int) ([]ReflectedProperty, error) {
	return Default.Enumerate(SchemaOf[T, PT](), depth)
}

// Locate resolves p using the Default reflector.
func Locate(p *Property) (ReflectedProperty, bool, error) {
	return Default.Locate(p)
}
