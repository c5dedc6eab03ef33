// Package display renders synchronization reports, inspections and link
// listings for people (term, text) and for tools (json, yaml, xml).
package display
