// Package scoring implements the unconference scheduler's weighted
// soft-penalty objective: four independent penalty terms (conflicting
// popular sessions, missing popular sessions, late popular sessions,
// same-topic collisions) folded into a single real-valued score that
// the optimizer and the brute-force evaluator both minimize.
//
// The package has no dependency on the schedule package on purpose —
// it operates on a minimal read-only Cell view so that schedule.Grid
// can depend on scoring without a Go import cycle.
package scoring
