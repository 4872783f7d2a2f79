// Package optimizer implements the local-search schedule improver:
// a randomized initial fill followed by a deterministic
// best-improvement neighborhood search over in-grid and pool swaps,
// with an optional multi-restart driver. Only the deterministic
// best-improvement branch is implemented; there is no random-move
// fallback.
package optimizer
