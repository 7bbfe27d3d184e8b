// Package reconcile compares expected identifiers against the files actually present.
//
// The package is split into three parts:
//
// 1. Engine: Reconcile is a pure function. Given file entries, a Matcher (usually a
//    compiled pattern.Pattern), an identifier Range, an IgnoreSet and a size ceiling, it
//    returns found, missing, duplicate and oversize classifications. It never fails on
//    odd file names; only an invalid range is an error.
//
// 2. Source: the collaborator that acquires the file list (a local directory, a bucket
//    prefix, a captured page snapshot). Acquisition is the single blocking step of an audit.
//
// 3. Audit: validates the Spec, acquires entries under a timeout (optionally through a
//    TTL cache with stampede protection) and runs the engine. Failures are terminal for the
//    run; nothing is retried.
//
// # Counting rules
//
//   - TotalExpected is the size of the range.
//   - FoundCount is the number of clean found identifiers plus the number of oversize files.
//   - Ignored identifiers never appear as missing and are excluded from FoundIdentifiers.
//   - Oversize files count as present, so their identifiers are never missing.
//
// # Usage Example
//
//	p, _ := pattern.Compile("___")
//	outcome, err := reconcile.Audit(ctx, &reconcile.Spec{
//	    Source:  src,
//	    Matcher: p,
//	    Range:   reconcile.Range{Start: 1, End: 140},
//	    Ignore:  reconcile.NewIgnoreSet([]int{13}),
//	    Timeout: 30 * time.Second,
//	})
package reconcile
