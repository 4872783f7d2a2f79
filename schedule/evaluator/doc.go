// Package evaluator implements the brute-force reference scheduler:
// exhaustive enumeration of every way to place candidate sessions into
// the free cells of a grid, used to validate the local-search
// optimizer and to benchmark it on small instances. Enumeration is
// parallelized across a worker pool; each worker clones the grid and
// accumulates thread-local best/worst results, publishing to two
// mutex-protected shared cells only once, at the end of its run.
package evaluator
