package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"product-api/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubObjectGetter serves in-memory objects keyed by "bucket/key".
type stubObjectGetter struct {
	objects map[string][]byte
	err     error
}

func (s *stubObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	body, ok := s.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, filePath string) ([]model.ProductInput, error)
}

func (m *mockLoader) Load(ctx context.Context, filePath string) ([]model.ProductInput, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, filePath)
	}
	return nil, errors.New("not implemented")
}

func TestS3Loader_Load(t *testing.T) {
	getter := &stubObjectGetter{objects: map[string][]byte{
		"seeds/catalog/stationery.jsonl.gz": gzipLines(t, []string{penLine, notebookLine}),
		"seeds/catalog/broken.jsonl.gz":     gzipLines(t, []string{"not json"}),
	}}
	loader := newS3Loader(getter, "seeds", zerolog.Nop())
	ctx := context.Background()

	t.Run("Object exists", func(t *testing.T) {
		records, err := loader.Load(ctx, "catalog/stationery.jsonl.gz")

		require.NoError(t, err)
		assert.Equal(t, []model.ProductInput{pen(), notebook()}, records)
	})

	t.Run("Object missing", func(t *testing.T) {
		_, err := loader.Load(ctx, "catalog/missing.jsonl.gz")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket=seeds")
	})

	t.Run("Malformed object", func(t *testing.T) {
		_, err := loader.Load(ctx, "catalog/broken.jsonl.gz")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "s3://seeds/catalog/broken.jsonl.gz line 1")
	})
}

func TestFallbackLoader_S3Success(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			assert.Equal(t, "catalog/seed.jsonl.gz", filePath, "S3 key should have prefix")
			return []model.ProductInput{pen()}, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", true, zerolog.Nop())

	records, err := fallback.Load(ctx, "seed.jsonl.gz")
	require.NoError(t, err)
	assert.Equal(t, []model.ProductInput{pen()}, records)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			assert.Equal(t, "seed.jsonl.gz", filePath, "local file path should not have prefix")
			return []model.ProductInput{notebook()}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", true, zerolog.Nop())

	records, err := fallback.Load(ctx, "seed.jsonl.gz")
	require.NoError(t, err)
	assert.Equal(t, []model.ProductInput{notebook()}, records)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	tests := []struct {
		name      string
		s3Loader  Loader
		s3Enabled bool
	}{
		{
			name: "Disabled by config",
			s3Loader: &mockLoader{
				loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
					t.Error("S3 loader should not be called when disabled")
					return nil, nil
				},
			},
			s3Enabled: false,
		},
		{
			name:      "No S3 loader configured",
			s3Loader:  nil,
			s3Enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileLoader := &mockLoader{
				loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
					return []model.ProductInput{pen()}, nil
				},
			}

			fallback := NewFallbackLoader(tt.s3Loader, fileLoader, "catalog/", tt.s3Enabled, zerolog.Nop())

			records, err := fallback.Load(context.Background(), "seed.jsonl.gz")
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}

func TestFallbackLoader_BothFail(t *testing.T) {
	failing := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.ProductInput, error) {
			return nil, errors.New("unavailable")
		},
	}

	fallback := NewFallbackLoader(failing, failing, "catalog/", true, zerolog.Nop())

	_, err := fallback.Load(context.Background(), "seed.jsonl.gz")
	assert.Error(t, err)
}
