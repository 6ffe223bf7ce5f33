package argv

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MatchPolicy defines what happens when a descriptor name matches, but the validation fails.
type MatchPolicy uint8

const (
	FirstNameMatch MatchPolicy = iota // the first name-matching descriptor decides the outcome (default)
	FirstSuccess                      // keep trying the next name-matching descriptors on failure
)

// String returns a lower-case ASCII representation of the policy.
func (p MatchPolicy) String() string {
	switch p {
	case FirstNameMatch:
		return "first-name"
	case FirstSuccess:
		return "first-success"
	}

	return fmt.Sprintf("policy(%d)", p)
}

// ParseMatchPolicy parses the policy name (case is ignored).
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(s) {
	case "first-name", "": // make the zero value useful
		return FirstNameMatch, nil
	case "first-success":
		return FirstSuccess, nil
	}

	return MatchPolicy(0), fmt.Errorf("unrecognized match policy: %q", s)
}

// ResolverOption allows to set up some internal resolver properties from outside.
type ResolverOption func(*options)

type options struct {
	mode   ErrorMode
	policy MatchPolicy
	log    *zap.Logger
}

// WithErrorMode sets the validation error mode.
func WithErrorMode(m ErrorMode) ResolverOption { return func(o *options) { o.mode = m } }

// WithMatchPolicy sets the descriptor match policy.
func WithMatchPolicy(p MatchPolicy) ResolverOption { return func(o *options) { o.policy = p } }

// WithLogger sets the logger for the resolution decisions (debug level only).
func WithLogger(log *zap.Logger) ResolverOption {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Resolver tries the known command descriptors, in order, against the arguments list.
type Resolver[C any] struct {
	descriptors []Descriptor[C]
	opts        options
}

// NewResolver creates a new Resolver. The descriptors slice is copied.
func NewResolver[C any](descriptors []Descriptor[C], opts ...ResolverOption) *Resolver[C] {
	var r = &Resolver[C]{
		descriptors: make([]Descriptor[C], len(descriptors)),
		opts:        options{log: zap.NewNop()},
	}

	copy(r.descriptors, descriptors)

	for _, opt := range opts {
		opt(&r.opts)
	}

	return r
}

// ErrorMode returns the configured error mode.
func (r *Resolver[C]) ErrorMode() ErrorMode { return r.opts.mode }

// MatchPolicy returns the configured match policy.
func (r *Resolver[C]) MatchPolicy() MatchPolicy { return r.opts.policy }

// Resolve tokenizes the arguments list and resolves it into the command.
func (r *Resolver[C]) Resolve(args []string) Outcome[C] { return r.ResolveInvocation(Parse(args)) }

// ResolveInvocation resolves the already tokenized invocation.
func (r *Resolver[C]) ResolveInvocation(inv Invocation) Outcome[C] {
	var first *Outcome[C] // the first failed outcome, used by the FirstSuccess policy

	for i, d := range r.descriptors {
		c, ok, err := d.Construct(r.opts.mode, inv)
		if !ok {
			continue
		}

		if err == nil {
			r.opts.log.Debug("Command resolved", zap.String("tag", d.Tag), zap.Int("descriptor", i))

			return matched(i, c)
		}

		r.opts.log.Debug("Command validation failed",
			zap.String("tag", d.Tag),
			zap.Int("descriptor", i),
			zap.Error(err),
		)

		var out = failed[C](i, asErrorList(err))

		if r.opts.policy == FirstNameMatch {
			return out
		}

		if first == nil {
			first = &out
		}
	}

	if first != nil {
		return *first
	}

	r.opts.log.Debug("No command matched", zap.String("name", inv.name))

	return noMatch[C]()
}

// Resolve is a shortcut for NewResolver(descriptors, opts...).Resolve(args).
func Resolve[C any](descriptors []Descriptor[C], args []string, opts ...ResolverOption) Outcome[C] {
	return NewResolver(descriptors, opts...).Resolve(args)
}
