package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
)

type bucket struct {
	objects     map[string][]byte
	contentType string
	err         error
}

func (b *bucket) PutObject(_ context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	if b.err != nil {
		return nil, b.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	b.contentType = aws.ToString(in.ContentType)
	return &awss3.PutObjectOutput{}, nil
}

func (b *bucket) GetObject(_ context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	if b.err != nil {
		return nil, b.err
	}
	data, ok := b.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &awss3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	b := &bucket{objects: map[string][]byte{}}
	store := NewStore(b, "hotel-backups", "pethotel/")

	_, err := store.Load(ctx, "main")
	assert.ErrorIs(t, err, syncstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, "main", []byte(`{"rooms":[]}`)))
	assert.Contains(t, b.objects, "hotel-backups/pethotel/main.json")
	assert.Equal(t, "application/json", b.contentType)

	data, err := store.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, `{"rooms":[]}`, string(data))
}

func TestErrorsArePropagated(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("access denied")
	store := NewStore(&bucket{objects: map[string][]byte{}, err: boom}, "b", "")

	assert.ErrorIs(t, store.Save(ctx, "main", nil), boom)
	_, err := store.Load(ctx, "main")
	assert.ErrorIs(t, err, boom)
	_, err = store.Load(ctx, "a/b")
	assert.ErrorIs(t, err, syncstore.ErrInvalidKey)
}
