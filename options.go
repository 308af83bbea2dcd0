package stdcell

import (
	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/primitive"
)

// Option configures a Builder during creation.
//
// Example:
//
//	// Default: gf180mcu rules, built-in primitive
//	b, err := stdcell.NewBuilder()
//
//	// Rules loaded from a file
//	rules, err := drt.Load(f)
//	b, err := stdcell.NewBuilder(stdcell.WithRules(rules))
type Option func(*options)

type options struct {
	process  string
	rules    *drt.Rules
	provider primitive.Provider
}

func defaultOptions() options {
	return options{
		process: drt.Default,
	}
}

// WithProcess selects a registered rule table by name.
// It is ignored when WithRules is also given.
func WithProcess(name string) Option {
	return func(o *options) {
		o.process = name
	}
}

// WithRules uses r directly instead of a registered table.
// The builder keeps its own copy.
func WithRules(r *drt.Rules) Option {
	return func(o *options) {
		o.rules = r
	}
}

// WithProvider replaces the built-in primitive with a process design kit
// provider.
func WithProvider(p primitive.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}
