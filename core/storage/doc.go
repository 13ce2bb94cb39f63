// Package storage provides the image bucket client.
//
// It turns the three intents of the application (upload an image, list the
// gallery, delete a selection) into calls against a bucket-based object store
// and classifies every outcome into a typed result.
//
// # Drivers
//
//   - supabase: raw REST calls against the Supabase Storage API
//     (POST /storage/v1/object/{bucket}/{name}, POST /storage/v1/object/list/{bucket},
//     DELETE /storage/v1/object/{bucket}), authenticated with the anonymous key.
//   - s3: the same operations against an S3-compatible endpoint through minio-go.
//
// # Results
//
// Upload, List and Delete return sealed result interfaces. A result is either the
// operation's Success value or a *Failure carrying a Kind and a user-facing message.
// Callers consume them with a type switch:
//
//	switch r := client.List(ctx).(type) {
//	case storage.ListSuccess:
//	    render(r.Items)
//	case *storage.Failure:
//	    showError(r.Message)
//	}
//
// No call panics or returns a raw error, and nothing is retried. List reads one
// page of ListLimit names only.
package storage
