// Package schedule models the unconference scheduling grid: an R×C
// matrix of (time-slot × room) cells plus a pool of sessions waiting
// to be placed, and the swap primitives an optimizer uses to move
// sessions between cells and the pool without ever touching a pinned
// cell.
package schedule
