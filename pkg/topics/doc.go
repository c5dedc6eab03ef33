// Package topics provides a topic-based help system for the sharelink CLI.
// Topics are markdown files embedded in the binary and rendered with glamour
// when the output is a terminal.
package topics
