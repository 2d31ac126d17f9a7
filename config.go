// config.go - functional options shared by Count, Walk and Scandir
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package scandir

import (
	"os"
	"runtime"
)

// Config holds the parameters common to Count, Walk and Scandir. Callers
// never construct one directly - they pass Option values to the
// operation constructor.
type Config struct {
	ReturnType  ReturnType
	Filter      FilterSpec
	Concurrency int
}

// Option mutates a Config. Use With* below to build one.
type Option func(*Config)

// WithReturnType selects the shape of metadata the operation emits. Each
// operation only accepts a subset of ReturnBase/ReturnExt/ReturnWalk - see
// its doc comment.
func WithReturnType(rt ReturnType) Option {
	return func(c *Config) { c.ReturnType = rt }
}

// WithFilter restricts which directories are descended and which files
// are emitted/counted.
func WithFilter(spec FilterSpec) Option {
	return func(c *Config) { c.Filter = spec }
}

// WithConcurrency overrides the number of workers in the traversal's
// work-stealing pool. The default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Concurrency = n
		}
	}
}

func defaultConfig() Config {
	return Config{
		ReturnType:  ReturnBase,
		Concurrency: runtime.NumCPU(),
	}
}

func buildConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// newTask resolves root, verifies it exists, compiles the filter, and
// wires an engine of the given opKind - the shared tail end of
// Count/Walk/Scandir. An unreachable root is a fatal error surfaced here
// rather than left to fail silently as a per-entry error once the pool
// starts.
func newTask(op opKind, root string, cfg Config) (*TaskHandle, error) {
	resolved, err := expandHome(root)
	if err != nil {
		return nil, &Error{Op: "start", Path: root, Err: err}
	}

	if _, err := os.Stat(resolved); err != nil {
		return nil, &Error{Op: "start", Path: root, Err: err}
	}

	eng := newEngine(engineConfig{
		root:        resolved,
		op:          op,
		returnType:  cfg.ReturnType,
		filter:      NewPathFilter(cfg.Filter),
		concurrency: cfg.Concurrency,
	})
	return newTaskHandle(eng), nil
}
