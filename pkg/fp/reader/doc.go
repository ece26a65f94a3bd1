// Package reader provides Reader[R, A], dependency threading through a
// read-only environment.
//
// A Reader wraps a pure function R -> A. Bind passes the same environment
// to every step of a chain; Local scopes a transformed environment to one
// subcomputation; Ask surfaces the environment itself. Run supplies the
// concrete environment at the boundary.
package reader
