// Package testdata builds synthetic scheduling instances for
// benchmarking and exercising schedule.Grid. It is not a generator for
// a surrounding web application's seed data (rooms/users/etc) - that is
// out of scope here.
package testdata
