// Package docindex loads static documentation search indexes and answers
// free-text queries against them.
//
// A documentation generator emits the index as a build artifact: an ordered
// sequence of records, each naming a page location with its title and text.
// This package contains the domain types, the lookup over a loaded record
// sequence, and the interfaces implemented by subpackages named after their
// primary dependency (e.g., gjson/, sqlite/, bleve/).
package docindex
