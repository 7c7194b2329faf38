// Package source obtains the bytes of NRRD files for decoding.
//
// Decoding works on an in-memory buffer. A [Source] is the collaborator that
// produces that buffer from somewhere: the local file system ([Local]), a
// map held in memory ([Memory]), or an object store (packages
// source/minio and source/s3).
//
// # Basic Usage
//
//	src := source.NewLocal("/data/scans")
//	doc, err := nrrd.Load(ctx, src, "brain.nrrd")
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound)
// when the named object does not exist.
package source
