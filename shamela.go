// Package shamela extracts metadata and body text from Shamela HTML book
// exports and aggregates the metadata of every extracted book into a single
// index keyed by book ID.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, sqlite/).
package shamela
