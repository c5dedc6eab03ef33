// Package types defines the core types and interfaces used throughout sharelink.
// This includes the fixed Category enumeration, the strategy and outcome enums,
// link decisions and records, the SynchronizationReport returned by every
// mutating operation, and the FS interface all filesystem access goes through.
package types
