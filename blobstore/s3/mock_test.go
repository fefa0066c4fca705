package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// MockS3Client is a testify mock of Client.
type MockS3Client struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (*T, error) {
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	return result[s3.HeadObjectOutput](m.Called(ctx, in))
}

func (m *MockS3Client) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return result[s3.GetObjectOutput](m.Called(ctx, in))
}

func (m *MockS3Client) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return result[s3.PutObjectOutput](m.Called(ctx, in))
}

func (m *MockS3Client) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return result[s3.DeleteObjectOutput](m.Called(ctx, in))
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	return result[s3.ListObjectsV2Output](m.Called(ctx, in))
}

func (m *MockS3Client) UploadPart(ctx context.Context, in *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return result[s3.UploadPartOutput](m.Called(ctx, in))
}

func (m *MockS3Client) CreateMultipartUpload(ctx context.Context, in *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return result[s3.CreateMultipartUploadOutput](m.Called(ctx, in))
}

func (m *MockS3Client) CompleteMultipartUpload(ctx context.Context, in *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return result[s3.CompleteMultipartUploadOutput](m.Called(ctx, in))
}

func (m *MockS3Client) AbortMultipartUpload(ctx context.Context, in *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return result[s3.AbortMultipartUploadOutput](m.Called(ctx, in))
}

var _ Client = (*MockS3Client)(nil)
