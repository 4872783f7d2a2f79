// Package schedconf loads cmd/schedbench's configuration from, in
// increasing order of precedence: a struct of compiled-in defaults,
// an optional TOML file, SCHEDBENCH_-prefixed environment variables,
// and command-line flags.
package schedconf
