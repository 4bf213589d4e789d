package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-screener/internal/intake"
	"alfredoptarigan/resume-screener/internal/models"
)

const DefaultConcurrency = 3

type Options struct {
	UploadedBy  string
	Concurrency int
}

// Outcome is the result of one file. Exactly one of Response and Err is set.
type Outcome struct {
	Path     string
	FileURL  string
	Response *models.ProcessResponse
	Err      error
}

// Run screens each file as an independent invocation: upload, then process.
// Files failing intake validation are reported without any request being
// made. A failing file never cancels the others.
func Run(ctx context.Context, api API, paths []string, opts Options) []Outcome {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(paths))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, path := range paths {
		outcomes[i].Path = path

		if err := validateLocalFile(path); err != nil {
			outcomes[i].Err = err
			log.Printf("⛔ Skipping %s: %v\n", path, err)
			continue
		}

		g.Go(func() error {
			outcomes[i] = screenFile(ctx, api, path, opts.UploadedBy)
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func screenFile(ctx context.Context, api API, path, uploadedBy string) Outcome {
	outcome := Outcome{Path: path}

	doc, err := api.Upload(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.FileURL = doc.FileURL
	log.Printf("📤 Uploaded %s\n", filepath.Base(path))

	resp, err := api.Process(ctx, models.ProcessRequest{
		FileURL:    doc.FileURL,
		FileName:   filepath.Base(path),
		UploadedBy: uploadedBy,
	})
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Response = resp
	return outcome
}

func validateLocalFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return intake.ValidateFile(filepath.Base(path), info.Size())
}
