package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/funi/blobstore"
)

// Options configures New.
type Options struct {
	AccessKey string
	SecretKey string
	Secure    bool // use TLS
	Region    string
	Prefix    string // root of the store inside the bucket
}

// New connects to endpoint (host:port, no scheme) with static credentials
// and returns a store for bucket.
func New(endpoint, bucket string, optFns ...func(*Options)) (*Store, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.Secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	return NewStore(client, bucket, opts.Prefix), nil
}

// Store keeps tables as objects of one bucket on MinIO or any other
// S3-compatible server.
type Store struct {
	client *minio.Client
	bucket string
	root   string
}

// NewStore wraps an existing client. All names are resolved below
// rootPrefix, see blobstore.KeyPrefix.
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		root:   blobstore.KeyPrefix(rootPrefix),
	}
}

func (s *Store) objectKey(name string) (string, error) {
	clean, err := blobstore.CleanName(name)
	if err != nil {
		return "", err
	}
	return s.root + clean, nil
}

func notFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}

// contentType labels JSON documents so they render in the console.
func contentType(name string) string {
	if strings.EqualFold(path.Ext(name), ".json") {
		return "application/json"
	}
	return "application/octet-stream"
}

// Open stats the object and returns a handle that reads it with ranged GETs.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key, err := s.objectKey(name)
	if err != nil {
		return nil, err
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("minio: %s: %w", key, blobstore.ErrNotFound)
		}
		return nil, fmt.Errorf("minio: stat %s: %w", key, err)
	}

	return &object{store: s, key: key, etag: info.ETag, size: info.Size}, nil
}

// Put uploads data in a single request; the object becomes visible only
// once the upload completed.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key, err := s.objectKey(name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType(key),
	})
	if err != nil {
		return fmt.Errorf("minio: put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object. Missing objects are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	key, err := s.objectKey(name)
	if err != nil {
		return err
	}

	err = s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !notFound(err) {
		return fmt.Errorf("minio: delete %s: %w", key, err)
	}
	return nil
}

// List returns the sorted names below the store root that start with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.root + strings.TrimLeft(prefix, "/"),
		Recursive: true,
	})

	var names []string
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("minio: list: %w", obj.Err)
		}
		if name := strings.TrimPrefix(obj.Key, s.root); name != "" {
			names = append(names, name)
		}
	}

	slices.Sort(names)
	return names, nil
}

// object reads one version of an object. Reads pin the ETag seen at Open so
// a concurrent overwrite surfaces as an error instead of mixed content.
type object struct {
	store *Store
	key   string
	etag  string
	size  int64
}

func (o *object) Size() int64 { return o.size }

func (o *object) Close() error { return nil }

func (o *object) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off < 0 || off >= o.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	last := min(off+int64(len(p)), o.size) - 1
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, last); err != nil {
		return 0, err
	}
	if o.etag != "" {
		if err := opts.SetMatchETag(o.etag); err != nil {
			return 0, err
		}
	}

	body, err := o.store.client.GetObject(ctx, o.store.bucket, o.key, opts)
	if err != nil {
		return 0, fmt.Errorf("minio: get %s: %w", o.key, err)
	}
	defer body.Close()

	want := int(last - off + 1)
	n, err := io.ReadFull(body, p[:want])
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return n, fmt.Errorf("minio: %s: short read at %d: %w", o.key, off, io.ErrUnexpectedEOF)
	case err != nil:
		return n, fmt.Errorf("minio: read %s: %w", o.key, err)
	case want < len(p):
		return n, io.EOF
	}
	return n, nil
}
