// Package internal holds build metadata injected at link time via
// -ldflags "-X github.com/toon-format/toon-go/internal.GitCommit=...".
package internal

// GitCommit is the commit the binary was built from.
var GitCommit = "unknown"

// BuildTime is the UTC time the binary was built.
var BuildTime = "unknown"
