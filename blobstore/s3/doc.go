// Package s3 implements blobstore.Store for Amazon S3.
//
// Reads stream the object body directly; writes stream through an io.Pipe
// into the s3 manager uploader, so neither direction buffers the blob in
// memory.
package s3
