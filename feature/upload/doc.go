// Package upload is the user-facing side of imgbase: it stores one image at a time.
//
// The object name is resolved from the explicit name, then the original file
// name, then image_{unixMillis}.jpg. The content type comes from the explicit
// value, then the multipart header or file extension, then image/jpeg. On success the
// public URL of the object is returned so it can be shared.
//
// # HTTP Endpoints
//
//   - POST /upload : multipart form with a "file" part and optional "name" and "mime" fields.
package upload
