// Package envfile provides a format-preserving model of KEY=VALUE (.env) files.
//
// A file is parsed into an ordered sequence of lines, each one of:
//
//   - Blank:   an empty or whitespace-only line
//   - Comment: a line starting with '#', kept verbatim (trimmed)
//   - Pair:    a KEY=VALUE line, split on the first '='
//
// Key operations:
//
//   - Parse/Load: build a Document from a string or a file
//   - Lookup/HasKey/HasValue/Pairs: query pairs in file order
//   - Add/Remove: insert, update or delete pairs, reporting a Status
//   - ReorderBasedOn: reshape a Document after a template Document
//   - Render/Save/SaveIfModified: write the Document back out
//
// Untouched lines round-trip exactly, apart from the surrounding whitespace
// that is trimmed from every line. Values are raw text: no quoting, escapes,
// interpolation or multi-line values are recognised.
//
// A Document is not safe for concurrent use.
package envfile
