// Package pagetext fetches a list of web pages and writes the readable text
// of each one into a single Markdown report, one section per source URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/, slog/).
package pagetext
