package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-screener/internal/models"
)

// API is the part of the HTTP API the batch runner needs.
type API interface {
	Upload(ctx context.Context, path string) (*models.UploadResponse, error)
	Process(ctx context.Context, req models.ProcessRequest) (*models.ProcessResponse, error)
}

type apiClient struct {
	client *resty.Client
}

func New(baseURL string) API {
	return &apiClient{
		client: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
	}
}

// Upload implements API. It sends one file per request.
func (a *apiClient) Upload(ctx context.Context, path string) (*models.UploadResponse, error) {
	var result models.UploadResult

	resp, err := a.client.R().
		SetContext(ctx).
		SetFile("files", path).
		SetResult(&result).
		Post("/api/v1/upload")
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", filepath.Base(path), err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to upload %s: %s", filepath.Base(path), uploadError(resp))
	}

	if len(result.Documents) == 0 {
		return nil, fmt.Errorf("failed to upload %s: no document stored", filepath.Base(path))
	}

	return &result.Documents[0], nil
}

// Process implements API.
func (a *apiClient) Process(ctx context.Context, req models.ProcessRequest) (*models.ProcessResponse, error) {
	var result models.ProcessResponse
	var apiErr models.ErrorResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/v1/process-resume")
	if err != nil {
		return nil, fmt.Errorf("failed to process %s: %w", req.FileName, err)
	}

	if resp.IsError() {
		message := apiErr.Error
		if message == "" {
			message = resp.Status()
		}
		return nil, fmt.Errorf("failed to process %s: %s", req.FileName, message)
	}

	return &result, nil
}

// uploadError prefers the server's reason over the bare status. A rejected
// upload carries it in rejected[0].error rather than in error.
func uploadError(resp *resty.Response) string {
	body := resp.Body()
	for _, path := range []string{"error", "rejected.0.error"} {
		if reason := gjson.GetBytes(body, path).String(); reason != "" {
			return reason
		}
	}
	return resp.Status()
}
