// Package writer provides Writer[W, A], computation with monoidal log
// accumulation.
//
// Each Writer carries the monoid it was built with; Bind combines logs in
// chain order through it. Tell records an entry, Listen exposes the log
// alongside the value, Censor rewrites the log. Run extracts (value, log)
// at the boundary.
package writer
