// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation protecting every audit endpoint.
//   - RayID: assigns each request a ray id, stored in the context and echoed in the
//     X-Ray-ID response header so a report can be traced back to its log lines.
package middleware
