package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Uploads obtains presigned PUT URLs from the upstream and pushes raw file
// bytes straight to object storage. No multipart, no resumable upload.
type Uploads struct {
	c *Client
}

func NewUploads(c *Client) *Uploads {
	return &Uploads{c: c}
}

type presignPayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

func (u *Uploads) PresignedURL(ctx context.Context, s *domain.Session, filename, contentType string) (*ports.PresignedUpload, error) {
	var out ports.PresignedUpload
	body := presignPayload{Filename: filename, ContentType: contentType}
	if err := u.c.Do(ctx, s, http.MethodPost, "/presigned-url", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutObject uploads bytes to the presigned URL. The URL is already
// authorized, so no bearer token travels with this request.
func (u *Uploads) PutObject(ctx context.Context, rawURL string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, rawURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.c.http.Do(req)
	if err != nil {
		u.c.log.Error().Err(err).Msg("object storage upload failed")
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)}
	}
	return nil
}
