// Package zip provides transpose operations between row-major tuples and
// column-major collections.
//
// Common usage:
// - Zip/ZipWith: combine same-shape inputs into rows, optionally padded
// - Unzip: transpose rows back into columns, tolerating ragged rows
// - ZipAny/ZipAnyWith: reflective front for mixed collections, extracting
//   values from maps and structs when IncludeValues is set
//
// Without a fill value the output spans the shortest input; with one it
// spans the longest and exhausted inputs contribute the fill.
package zip
