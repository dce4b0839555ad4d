// Package engine expands one seed word into its full candidate stream. It
// never imports app, writers, cli or report; keep it domain-only.
//
// Expansion is planned first (Plan: an ordered list of prefix + suffix
// family steps) and then walked. The same plan drives Estimate, so sizing
// and generation can never disagree about order or content.
package engine
