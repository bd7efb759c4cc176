package runtime

import (
	"os"
	"runtime"
	"time"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"

	"github.com/gitrdm/lispcore/internal/pool"
)

// Context is the explicit handle every entry point that might touch a
// reference type (pkg/ref) or a shared pool should be passed, in place
// of an ambient global pool pointer. It bundles the one process-wide
// shared Pool with a structured logger for diagnostic,
// non-authoritative events, never for control flow. The pool and the
// reference types in pkg/ref do not log through it themselves.
type Context struct {
	Pool *pool.Pool
	Log  *logiface.Logger[*izerolog.Event]

	namespaces *Namespaces
	builtins   *BuiltinTable
}

// Option configures a Context at construction time, a struct-of-options
// idiom for in-process configuration rather than a parsed config file
// — this module has no persisted state.
type Option func(*contextConfig)

type contextConfig struct {
	maxWorkers int
	minWorkers int
	poolConfig pool.Config
	logLevel   logiface.Level
	logWriter  interface {
		Write(p []byte) (int, error)
	}
}

// WithPoolSize overrides the shared pool's worker bounds. The pool is
// otherwise sized against runtime.NumCPU, the typical default for an
// implementation-chosen pool size of "number of hardware threads".
func WithPoolSize(minWorkers, maxWorkers int) Option {
	return func(c *contextConfig) {
		c.minWorkers = minWorkers
		c.maxWorkers = maxWorkers
	}
}

// WithLogLevel sets the minimum logiface.Level the Context's logger
// emits; defaults to Informational.
func WithLogLevel(lvl logiface.Level) Option {
	return func(c *contextConfig) { c.logLevel = lvl }
}

// WithLogWriter redirects the structured logger's output; defaults to
// os.Stderr.
func WithLogWriter(w interface{ Write(p []byte) (int, error) }) Option {
	return func(c *contextConfig) { c.logWriter = w }
}

// NewContext constructs a Context with its shared pool created eagerly
// — an explicit Context is already an opt-in construction step, unlike
// an ambient global pool — and a zerolog-backed structured logger.
func NewContext(opts ...Option) *Context {
	cfg := contextConfig{
		minWorkers: 1,
		maxWorkers: runtime.NumCPU(),
		poolConfig: pool.Config{
			ScaleUpThreshold:   4,
			ScaleDownThreshold: 1,
			ScaleCheckInterval: 250 * time.Millisecond,
			ScaleCooldown:      time.Second,
		},
		logLevel:  izerolog.L.LevelInformational(),
		logWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := pool.New(cfg.maxWorkers, cfg.minWorkers, cfg.poolConfig)

	zl := zerolog.New(cfg.logWriter).With().Timestamp().Logger()
	logger := izerolog.L.New(izerolog.L.WithZerolog(zl), izerolog.L.WithLevel(cfg.logLevel))

	return &Context{
		Pool:       p,
		Log:        logger,
		namespaces: NewNamespaces(),
		builtins:   NewBuiltinTable(),
	}
}

// Namespaces returns the Context's namespace registry (a
// find-or-create environment).
func (c *Context) Namespaces() *Namespaces { return c.namespaces }

// Builtins returns the Context's builtin metadata table.
func (c *Context) Builtins() *BuiltinTable { return c.builtins }

// Bootstrap interns the fixed dynamic-var list and the Java-interop
// static field shims into ns, and installs every entry currently
// registered in c.Builtins() — the minimal "boot a namespace" sequence
// a host evaluator runs once before serving user code.
func (c *Context) Bootstrap(ns *Namespace) {
	RegisterDynamicVars(ns)
	RegisterInteropShims(ns)
	c.builtins.InternInto(ns)
}

// Shutdown releases the shared pool. It blocks until tasks already
// running on the pool finish; tasks still waiting in the queue are not
// guaranteed to run, so callers that need them should Await their own
// agents/futures first.
func (c *Context) Shutdown() {
	c.Pool.Shutdown()
}
