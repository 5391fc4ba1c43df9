// Package version contains the current version of ictiobus, split out for
// easy use from both the library and the CLI.
package version

// Current is the string representing the current version of ictiobus.
const Current = "0.1.0"
