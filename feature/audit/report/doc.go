// Package report renders reconciliation results as plain text and stores them.
//
// The layout is fixed: a summary block, the missing identifiers ten per row and
// zero-padded to the identifier width, the duplicate groups with numbered files, the
// oversize files in MB, and a generation timestamp.
//
// Reports are written next to the audited folder as Audit_Report.txt, or uploaded to
// the bucket under the configured report prefix.
package report
