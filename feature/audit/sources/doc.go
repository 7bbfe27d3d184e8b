// Package sources provides the snapshot acquisition collaborators used by an audit.
//
// Every source implements reconcile.Source. Load is the only blocking step of an audit
// and is called once per run; sources never retry.
//
// # Sources
//
//   - Directory: lists a local folder (name and size per file).
//   - Bucket: lists an object storage prefix recursively through storage.Client.
//   - Snapshot: extracts files from a captured listing page (JSON or HTML) read from
//     a file, a bucket object or raw bytes.
//   - Remote: fetches a public folder page over HTTP and extracts the files it shows.
//
// Bucket and Remote implement reconcile.Cacheable so repeated audits of the same
// location can share one listing.
package sources
