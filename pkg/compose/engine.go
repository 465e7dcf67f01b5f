package compose

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/observability"
	"github.com/matzehuels/glyphsmith/pkg/store"
	"github.com/matzehuels/glyphsmith/pkg/svgdoc"
)

// Resolver maps a component identifier to the path of its SVG file.
type Resolver interface {
	Resolve(id string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(id string) (string, error)

// Resolve calls f(id).
func (f ResolverFunc) Resolve(id string) (string, error) { return f(id) }

// Result describes a composed and stored glyph.
type Result struct {
	// Name is the resource name the glyph was stored under.
	Name string

	// SVG is the stored document.
	SVG []byte

	// Layout is the outer arrangement.
	Layout layout.Kind

	// Used lists the component identifiers present in the glyph.
	Used []string

	// Nested reports whether three components were composed.
	Nested bool

	// Degraded reports that a three-component request fell back to the
	// first two components.
	Degraded bool
}

// Intermediate is the outcome of building the inner pair of a nested
// composition. Err is set if any step failed; Component is the stored
// intermediate loaded back as a component.
type Intermediate struct {
	Layout    layout.Kind
	Glyph     *Glyph
	Component *svgdoc.Component
	TempName  string
	Err       error
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the layout configuration. It is normalized on use.
func WithConfig(cfg layout.Config) Option {
	return func(e *Engine) { e.cfg = cfg.Normalize() }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used for resource name stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the suffix generator for temporary resource names.
func WithIDGenerator(next func() string) Option {
	return func(e *Engine) { e.newID = next }
}

// WithIntermediateHook registers fn to observe every nested intermediate
// before it is consumed.
func WithIntermediateHook(fn func(Intermediate)) Option {
	return func(e *Engine) { e.onIntermediate = fn }
}

// Engine composes glyphs from resolved components into a store.
// It holds no per-request state and is safe for concurrent use when its
// resolver and store are.
type Engine struct {
	resolver       Resolver
	store          store.Store
	cfg            layout.Config
	logger         *log.Logger
	now            func() time.Time
	newID          func() string
	onIntermediate func(Intermediate)
}

// New creates an engine reading components through resolver and writing
// glyphs to st. The layout defaults to layout.DriverConfig.
func New(resolver Resolver, st store.Store, opts ...Option) *Engine {
	e := &Engine{
		resolver: resolver,
		store:    st,
		cfg:      layout.DriverConfig(),
		logger:   log.New(io.Discard),
		now:      time.Now,
		newID:    newTempID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the normalized layout configuration.
func (e *Engine) Config() layout.Config {
	return e.cfg
}

// Compose builds the glyph for req, stores it and returns its name.
//
// A request with fewer than two components returns ErrNotComposable and
// one with more than three fails with INVALID_REQUEST, both before any
// resource is read. Errors loading the components of a two-component
// request are returned. A three-component request only fails if the
// fallback pair of its first two components fails.
func (e *Engine) Compose(ctx context.Context, req Request) (res *Result, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Compose()
	parts := len(req.Components)
	hooks.OnComposeStart(ctx, req.Layout.String(), parts)
	start := time.Now()
	defer func() {
		hooks.OnComposeComplete(ctx, req.Layout.String(), parts, time.Since(start), res != nil && res.Degraded, err)
	}()

	return e.compose(ctx, req)
}

func (e *Engine) compose(ctx context.Context, req Request) (*Result, error) {
	c := &call{engine: e, loaded: make(map[string]*svgdoc.Component)}
	base := req.BaseName()
	stamp := e.now().Unix()

	if len(req.Components) == 2 {
		return c.pair(ctx, req, base, stamp)
	}

	res, err := c.nested(ctx, req, base, stamp)
	if err == nil {
		return res, nil
	}

	e.logger.Warn("Three-part compose failed, falling back to two parts",
		"name", base, "layout", req.Layout, "dropped", req.Components[2], "err", err)
	res, err = c.pair(ctx, req, base, stamp)
	if err != nil {
		return nil, err
	}
	res.Degraded = true
	return res, nil
}

// call carries the components loaded during one Compose call.
type call struct {
	engine *Engine
	loaded map[string]*svgdoc.Component
}

// component resolves and loads id, reusing an earlier load in this call.
func (c *call) component(id string) (*svgdoc.Component, error) {
	if comp, ok := c.loaded[id]; ok {
		return comp, nil
	}
	path, err := c.engine.resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	comp, err := svgdoc.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.loaded[id] = comp
	return comp, nil
}

// pair composes the first two components of req under req.Layout.
func (c *call) pair(ctx context.Context, req Request, base string, stamp int64) (*Result, error) {
	first, err := c.component(req.Components[0])
	if err != nil {
		return nil, err
	}
	second, err := c.component(req.Components[1])
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s_%d.svg", base, req.Layout.Tag(), stamp)
	data, err := c.engine.persist(ctx, name, Pair(first, second, req.Layout, c.engine.cfg))
	if err != nil {
		return nil, err
	}
	c.engine.logger.Debug("Wrote glyph", "name", name)
	return &Result{
		Name:   name,
		SVG:    data,
		Layout: req.Layout,
		Used:   append([]string(nil), req.Components[:2]...),
	}, nil
}

// nested composes all three components of req. Any error it returns
// sends the caller to the two-component fallback.
func (c *call) nested(ctx context.Context, req Request, base string, stamp int64) (*Result, error) {
	im := c.intermediate(ctx, req, base, stamp)
	if im.TempName != "" {
		defer c.engine.discard(im.TempName)
	}
	if c.engine.onIntermediate != nil {
		c.engine.onIntermediate(im)
	}
	if im.Err != nil {
		return nil, im.Err
	}

	first, err := c.component(req.Components[0])
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s3_%d.svg", base, req.Layout.Tag(), stamp)
	data, err := c.engine.persist(ctx, name, Pair(first, im.Component, req.Layout, c.engine.cfg))
	if err != nil {
		return nil, err
	}
	c.engine.logger.Debug("Wrote glyph", "name", name, "parts", 3)
	return &Result{
		Name:   name,
		SVG:    data,
		Layout: req.Layout,
		Used:   append([]string(nil), req.Components...),
		Nested: true,
	}, nil
}

// intermediate pairs the second and third components under the alternate
// layout, stores the result under a temporary name and loads it back.
func (c *call) intermediate(ctx context.Context, req Request, base string, stamp int64) Intermediate {
	im := Intermediate{Layout: req.Layout.Alternate()}

	second, err := c.component(req.Components[1])
	if err != nil {
		im.Err = err
		return im
	}
	third, err := c.component(req.Components[2])
	if err != nil {
		im.Err = err
		return im
	}

	im.Glyph = Pair(second, third, im.Layout, c.engine.cfg)
	im.TempName = fmt.Sprintf("tmp_%s_%s_%d_%s.svg", base, req.Layout.Tag(), stamp, c.engine.newID())

	if _, err := c.engine.persist(ctx, im.TempName, im.Glyph); err != nil {
		im.Err = err
		return im
	}
	data, err := c.engine.store.Get(ctx, im.TempName)
	if err != nil {
		im.Err = err
		return im
	}
	comp, err := svgdoc.Parse(svgdoc.Sanitize(data))
	if err != nil {
		im.Err = errors.Wrap(errors.ErrCodeMalformedDocument, err, "reload intermediate %s", im.TempName)
		return im
	}
	im.Component = comp
	return im
}

// persist serializes g and stores it under name.
func (e *Engine) persist(ctx context.Context, name string, g *Glyph) ([]byte, error) {
	data, err := g.Bytes()
	if err != nil {
		return nil, err
	}
	if err := e.store.Put(ctx, name, data); err != nil {
		return nil, err
	}
	observability.Store().OnGlyphStored(ctx, name, len(data))
	return data, nil
}

// discard removes a temporary resource. Failures are only logged.
// It uses a fresh context so cleanup still runs after cancellation.
func (e *Engine) discard(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.store.Delete(ctx, name); err != nil {
		e.logger.Debug("Could not remove intermediate", "name", name, "err", err)
	}
}

func newTempID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
