// Package version carries the build version, overridden with
// -ldflags "-X rustoveva/internal/version.Version=...".
package version

var Version = "1.0.0"
