// Package publish uploads a built site to an S3 bucket.
//
// Uploads are driven by the build manifest: an object whose stored
// sha256 metadata already matches the manifest is skipped, and objects
// under the prefix that the manifest no longer lists can be pruned.
package publish
