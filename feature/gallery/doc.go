// Package gallery is the admin side of imgbase: browsing and pruning the bucket.
//
// Listing reads a single page of at most 100 objects, in the order the backend
// returns them, and pairs each name with its public URL. Deleting sends every
// selected name in one request; the backend's answer is treated as atomic and
// partial deletes are not reported.
//
// # HTTP Endpoints
//
//   - GET /gallery : list images ({"items":[{"name","url"}],"count":n}).
//   - DELETE /gallery : delete {"names":[...]}.
//
// Both routes require the X-API-Key header when server.api_key is set.
package gallery
