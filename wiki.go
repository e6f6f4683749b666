// Package wiki provides a small CLI that prints a random Wikipedia page
// summary: the page title followed by its word-wrapped extract.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, jsonschema/, uniseg/).
package wiki
