// Package obslog provides the minimal structured-logging interface
// used by schedule/optimizer and cmd/schedbench:
// a subset of logrus.FieldLogger, with Discard as its no-op
// implementation and NewZerolog as the one concrete backend.
package obslog
