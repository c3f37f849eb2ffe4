package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	tests := map[string]string{
		"small.gif":         "posts/small.gif",
		"../../etc/passwd":  "posts/passwd",
		`C:\Users\me\a.png`: "posts/a.png",
		"my cat.jpg":        "posts/my_cat.jpg",
		"":                  "posts/upload",
	}
	for in, want := range tests {
		assert.Equal(t, want, ObjectPath(in), in)
	}
}

func TestLocalStorage_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewLocalStorage(fs, "/media", "/media/")
	ctx := context.Background()

	p, err := s.Save(ctx, "small.gif", "image/gif", strings.NewReader("GIF89a"))
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", p)
	assert.Equal(t, "/media/posts/small.gif", s.URL(p))

	data, err := afero.ReadFile(fs, "/media/posts/small.gif")
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(data))

	second, err := s.Save(ctx, "small.gif", "image/gif", strings.NewReader("other"))
	require.NoError(t, err)
	assert.NotEqual(t, p, second)
	assert.True(t, strings.HasPrefix(second, "posts/small_"))
	assert.True(t, strings.HasSuffix(second, ".gif"))

	assert.Empty(t, s.URL(""))
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &s3.PutObjectOutput{}, nil
}

func TestS3Storage_Save(t *testing.T) {
	client := &fakeS3{}
	s := NewS3Storage(client, "bucket", "eu-west-1")

	key, err := s.Save(context.Background(), "small.gif", "image/gif", bytes.NewReader([]byte("GIF89a")))
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", key)
	assert.Equal(t, "bucket", aws.ToString(client.input.Bucket))
	assert.Equal(t, "image/gif", aws.ToString(client.input.ContentType))
	assert.Equal(t, "GIF89a", string(client.body))
	assert.Equal(t, "https://bucket.s3.eu-west-1.amazonaws.com/posts/small.gif", s.URL(key))
}
