// Package scanner evaluates each category of the shared tree against the
// project tree and decides how it is linked: the whole directory, each file,
// or a mirrored directory whose children are evaluated the same way.
//
// Synchronize applies the decisions through the materializer; Plan computes
// the same report without touching the filesystem. Neither returns an error:
// every failure is recorded in the report next to the path it concerns.
package scanner
