// Package argv turns a raw argument vector into typed command values.
//
// The input is split into a leading command name, a run of positional arguments and a set of
// `--name [value...]` option occurrences. Command descriptors then validate the required options and
// the positional arguments count before a command value is built. Every function here is pure, so the
// package is safe for concurrent use without any locking.
package argv
