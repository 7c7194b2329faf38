// Package s3 provides a source.Source backed by Amazon S3.
//
// # Basic Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := s3src.NewStore(s3.NewFromConfig(cfg), "scans", "2024/")
//	doc, err := nrrd.Load(ctx, src, "brain.nrrd")
//
// The store only needs GetObject, so any value implementing [Client]
// (including a test double) can stand in for *s3.Client.
package s3
