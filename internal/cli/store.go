package cli

import (
	"context"
	"fmt"

	"github.com/hupe1980/funi/blobstore"
	"github.com/hupe1980/funi/blobstore/minio"
	"github.com/hupe1980/funi/blobstore/s3"
	"github.com/hupe1980/funi/resource"
)

// openStore builds the blob store described by cfg. When rc carries an IO
// limit the store is wrapped in a ThrottledStore.
func openStore(ctx context.Context, cfg StoreConfig, rc *resource.Controller) (blobstore.BlobStore, error) {
	var (
		store blobstore.BlobStore
		err   error
	)
	switch cfg.Kind {
	case "local", "":
		store = blobstore.NewLocalStore(cfg.Root)
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("store s3: bucket is required")
		}
		store, err = s3.New(ctx, cfg.Bucket,
			s3.WithPrefix(cfg.Prefix),
			s3.WithRegion(cfg.Region),
			s3.WithEndpoint(cfg.Endpoint),
		)
	case "minio":
		if cfg.Bucket == "" || cfg.Endpoint == "" {
			return nil, fmt.Errorf("store minio: bucket and endpoint are required")
		}
		store, err = minio.New(cfg.Endpoint, cfg.Bucket, func(o *minio.Options) {
			o.AccessKey = cfg.AccessKey
			o.SecretKey = cfg.SecretKey
			o.Secure = cfg.Secure
			o.Region = cfg.Region
			o.Prefix = cfg.Prefix
		})
	default:
		return nil, fmt.Errorf("unknown store %q (want local, s3 or minio)", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if rc.Config().IOLimitBytesPerSec > 0 {
		store = blobstore.NewThrottledStore(store, rc)
	}
	return store, nil
}
