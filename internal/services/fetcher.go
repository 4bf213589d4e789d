package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type FileFetcher interface {
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}

type fileFetcher struct {
	client *resty.Client
}

// NewFileFetcher downloads resumes over plain HTTP(S). The client has no
// timeout and no retry policy; cancellation comes from ctx.
func NewFileFetcher() FileFetcher {
	return &fileFetcher{client: resty.New()}
}

// Fetch implements FileFetcher.
func (f *fileFetcher) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download resume file: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to download resume file: %s", resp.Status())
	}

	return resp.Body(), nil
}
