// Package blobstore provides readable and writable byte streams keyed by
// name.
//
// The streaming core is agnostic to where its bytes come from; this package
// is the seam. A Store hands out sequential streams only — no seeking, no
// ranged reads — because every consumer in this project is a single-pass
// record scan.
//
// Implementations: LocalStore (filesystem), MemoryStore (tests), and the
// s3 and minio subpackages for object storage.
package blobstore
