// Package spintest provides helpers for testing code built on package spin:
// randomly filled values from a logged seed, and a checker for source that
// must not compile.
package spintest
