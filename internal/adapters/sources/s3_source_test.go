package sources

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	calls   []string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.calls = append(f.calls, key)

	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3SourceLoadLaunches(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"launch-data/spacex.csv": sampleCSV}}

	src := &S3Source{client: fake, bucket: "launch-data", key: "spacex.csv"}
	got, err := src.LoadLaunches(context.Background())
	require.NoError(t, err)

	assert.Len(t, got, 4)
	assert.Equal(t, []string{"launch-data/spacex.csv"}, fake.calls)
}

func TestS3SourceMissingObject(t *testing.T) {
	src := &S3Source{client: &fakeS3{}, bucket: "launch-data", key: "missing.csv"}

	_, err := src.LoadLaunches(context.Background())
	assert.ErrorContains(t, err, "s3://launch-data/missing.csv")
}

func TestNewS3SourceRequiresBucketAndKey(t *testing.T) {
	_, err := NewS3Source(context.Background(), S3Config{Key: "spacex.csv"})
	assert.Error(t, err)
}
