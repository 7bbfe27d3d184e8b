// Package listing turns a captured remote folder page into a candidate file list.
//
// A remote listing UI does not name its entries through any single stable signal, so the
// extractor runs several independent strategies over an immutable Snapshot and merges
// their candidates:
//
//  1. Tooltip: elements whose tooltip attribute is a document name. Size unknown.
//  2. Label: elements whose accessible label starts with a document name ("name.pdf, PDF, 1 MB").
//     Size is recovered from the enclosing row text.
//  3. Row text: lines of row-like containers that look like document names.
//  4. Embedded data: quoted document names inside inline page data.
//
// Candidates are deduplicated case-insensitively; the first strategy to report a name wins,
// including its size estimate. The result is best-effort: the page structure belongs to a
// third party and can change without notice, so missing entries are an accepted limitation.
//
// # Snapshots
//
// A Snapshot is either posted directly as JSON by a capture tool or built from captured
// markup with ParseHTML. Extraction never fails; an empty snapshot yields an empty list.
package listing
