// Package minio provides a source.Source backed by the MinIO client.
//
// It works with MinIO and any other S3-compatible storage reachable through
// the official MinIO Go client.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := miniosrc.NewStore(client, "scans", "2024/")
//	doc, err := nrrd.Load(ctx, src, "brain.nrrd")
package minio
