package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"movie-catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineMinIO(t *testing.T, publicURL string) *MinIOService {
	t.Helper()
	svc, err := newMinIOService(&config.MinIOConfig{
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "catalog",
		Region:          "us-east-1",
		PublicURL:       publicURL,
		PosterPrefix:    "/posters/",
	}, quietLogger())
	require.NoError(t, err)
	return svc
}

func TestMinIOServiceObjectPaths(t *testing.T) {
	svc := newOfflineMinIO(t, "https://cdn.example.com/catalog")

	assert.Equal(t, "posters/7.jpg", svc.PosterObjectPath(7))
	assert.Equal(t, "https://cdn.example.com/catalog/posters/7.jpg", svc.PublicURL("posters/7.jpg"))

	upload := svc.UploadObjectPath("../Zootopia Poster.png")
	assert.True(t, strings.HasPrefix(upload, "posters/Zootopia Poster_"), upload)
	assert.True(t, strings.HasSuffix(upload, ".png"), upload)
	assert.NotEqual(t, upload, svc.UploadObjectPath("../Zootopia Poster.png"))
}

func TestMinIOServicePresignsPosterUpload(t *testing.T) {
	svc := newOfflineMinIO(t, "http://localhost:9000/catalog")

	presigned, public, err := svc.GeneratePresignedURL(context.Background(), svc.PosterObjectPath(7))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/catalog/posters/7.jpg", public)

	u, err := url.Parse(presigned)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/catalog/posters/7.jpg", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
