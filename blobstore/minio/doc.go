// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, Garage,
// SeaweedFS) without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "tables", func(o *minio.Options) {
//	    o.AccessKey = "minioadmin"
//	    o.SecretKey = "minioadmin"
//	    o.Prefix = "batch-7/"
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := blobstore.ReadAll(ctx, store, "points.funi")
//
// An existing *minio.Client can be wrapped with NewStore.
package minio
