// Package s3 stores tables in an Amazon S3 bucket.
//
//	store, err := s3.New(ctx, "datasets",
//	    s3.WithPrefix("tables"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	data, err := blobstore.ReadAll(ctx, store, "points.funi")
//
// Credentials come from the default AWS chain. WithEndpoint targets other
// S3-compatible servers with path-style addressing.
//
// Open issues a HEAD and every ReadAt a ranged GET conditioned on the ETag
// seen at Open. Put goes through the SDK upload manager and switches to a
// multipart upload above the part size. List pages through ListObjectsV2.
package s3
