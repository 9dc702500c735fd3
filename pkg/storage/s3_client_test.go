package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
}

func newTestClient(t *testing.T, handler http.HandlerFunc) S3Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewS3Client(context.Background(), S3Config{
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return client
}

func TestS3Client_Upload(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{method: r.Method, path: r.URL.Path, header: r.Header.Clone()})
		mu.Unlock()
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	})

	err := client.Upload(context.Background(), "archive", "forms/prenatal_form/a.pdf",
		bytes.NewReader([]byte("%PDF-1.3")), UploadOptions{ContentType: "application/pdf"})
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, http.MethodPut, seen[0].method)
	assert.Equal(t, "/archive/forms/prenatal_form/a.pdf", seen[0].path)
	assert.Equal(t, "application/pdf", seen[0].header.Get("Content-Type"))
}

func TestS3Client_Download(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/archive/a.pdf", r.URL.Path)
		_, _ = w.Write([]byte("%PDF-1.3 body"))
	})

	body, err := client.Download(context.Background(), "archive", "a.pdf")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 body", string(data))
}

func TestS3Client_DownloadMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Download(context.Background(), "archive", "missing.pdf")
	assert.Error(t, err)
}

func TestS3Client_GetPresignedURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("presigning must not call the server")
	})

	url, err := client.GetPresignedURL(context.Background(), "archive", "a.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.Contains(url, "/archive/a.pdf"), url)
	assert.Contains(t, url, "X-Amz-Expires=900")
}
