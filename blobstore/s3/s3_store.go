package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/funi/blobstore"
)

// Client lists the S3 operations the store issues. *s3.Client satisfies it.
type Client interface {
	manager.UploadAPIClient
	s3.ListObjectsV2APIClient
	s3.HeadObjectAPIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// UploadConfig tunes the upload manager used by Put.
type UploadConfig struct {
	PartSize       int64 // bytes per multipart part
	Concurrency    int   // parts in flight
	EnableChecksum bool  // ask S3 to verify a CRC32C of every part
}

// DefaultUploadConfig returns 8 MiB parts, five at a time, with checksums.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:       8 << 20,
		Concurrency:    5,
		EnableChecksum: true,
	}
}

// Options configures New.
type Options struct {
	Prefix   string
	Region   string
	Endpoint string
	Upload   UploadConfig
}

// WithPrefix roots the store below prefix inside the bucket.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion overrides the region of the shared AWS config.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint points the client at an S3-compatible server and switches to
// path-style addressing.
func WithEndpoint(endpoint string) func(*Options) {
	return func(o *Options) { o.Endpoint = endpoint }
}

// WithUploadConfig replaces DefaultUploadConfig.
func WithUploadConfig(cfg UploadConfig) func(*Options) {
	return func(o *Options) { o.Upload = cfg }
}

// New resolves credentials through the default AWS chain and returns a store
// for bucket.
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	opts := Options{Upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&opts)
	}

	var load []func(*config.LoadOptions) error
	if opts.Region != "" {
		load = append(load, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, load...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint == "" {
			return
		}
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})

	return newStore(client, bucket, opts.Prefix, opts.Upload), nil
}

// Store keeps tables as objects of one S3 bucket.
type Store struct {
	client   Client
	uploader *manager.Uploader
	bucket   string
	root     string
	checksum bool
}

// NewStore wraps an existing client with the default upload settings. All
// names are resolved below rootPrefix, see blobstore.KeyPrefix.
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return newStore(client, bucket, rootPrefix, DefaultUploadConfig())
}

func newStore(client Client, bucket, rootPrefix string, up UploadConfig) *Store {
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = up.PartSize
		u.Concurrency = up.Concurrency
	})

	return &Store{
		client:   client,
		uploader: uploader,
		bucket:   bucket,
		root:     blobstore.KeyPrefix(rootPrefix),
		checksum: up.EnableChecksum,
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
	var missing *types.NotFound
	var noKey *types.NoSuchKey
	return errors.As(err, &missing) || errors.As(err, &noKey)
}

// Open issues a HEAD for the object size and returns a ranged reader.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key, err := s.objectKey(name)
	if err != nil {
		return nil, err
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("s3: %s: %w", key, blobstore.ErrNotFound)
		}
		return nil, fmt.Errorf("s3: head %s: %w", key, err)
	}

	return &object{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		etag:   aws.ToString(head.ETag),
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Put uploads data. Payloads beyond the part size go up as a multipart
// upload.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key, err := s.objectKey(name)
	if err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if s.checksum {
		in.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}

	if _, err := s.uploader.Upload(ctx, in); err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object. Missing objects are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	key, err := s.objectKey(name)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !notFound(err) {
		return fmt.Errorf("s3: delete %s: %w", key, err)
	}
	return nil
}

// List returns the sorted names below the store root that start with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.root + strings.TrimLeft(prefix, "/")),
	})

	var names []string
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3: list: %w", err)
		}
		for _, obj := range page.Contents {
			if name := strings.TrimPrefix(aws.ToString(obj.Key), s.root); name != "" {
				names = append(names, name)
			}
		}
	}

	slices.Sort(names)
	return names, nil
}

// object reads one version of an object with ranged GETs. Reads carry the
// ETag seen at Open so an overwrite in between fails the request.
type object struct {
	client Client
	bucket string
	key    string
	etag   string
	size   int64
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
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	last := min(off+int64(len(p)), o.size) - 1
	in := &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, last)),
	}
	if o.etag != "" {
		in.IfMatch = aws.String(o.etag)
	}

	out, err := o.client.GetObject(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("s3: get %s: %w", o.key, err)
	}
	defer func() { _ = out.Body.Close() }()

	want := int(last - off + 1)
	n, err := io.ReadFull(out.Body, p[:want])
	switch {
	case errors.Is(err, io.EOF):
		return n, io.ErrUnexpectedEOF
	case err != nil:
		return n, err
	case want < len(p):
		return n, io.EOF
	}
	return n, nil
}
