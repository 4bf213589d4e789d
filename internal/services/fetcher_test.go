package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/jane.pdf", r.URL.Path)
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	content, err := NewFileFetcher().Fetch(context.Background(), srv.URL+"/uploads/jane.pdf")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), content)
}

func TestFileFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewFileFetcher().Fetch(context.Background(), srv.URL+"/missing.pdf")

	require.Error(t, err)
	assert.Equal(t, "failed to download resume file: 404 Not Found", err.Error())
}

func TestFileFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewFileFetcher().Fetch(context.Background(), url+"/jane.pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download resume file")
}
