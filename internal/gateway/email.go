package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// Attachment is an optional file sent along with an email.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// EmailRequest carries the email form fields.
type EmailRequest struct {
	Subject    string
	Body       string
	Recipient  string
	Attachment *Attachment
}

// EmailAck is whatever JSON object the backend acknowledges a send with.
type EmailAck map[string]any

// AttachmentFromFile opens path as an attachment. The caller closes the returned file.
func AttachmentFromFile(path string) (*Attachment, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return &Attachment{Filename: filepath.Base(path), Content: f}, f, nil
}

// PostEmail submits the email form as multipart data.
func (c *Client) PostEmail(ctx context.Context, req EmailRequest) (EmailAck, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"subject", req.Subject},
		{"body", req.Body},
		{"receiverEmail", req.Recipient},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", f.name, err)
		}
	}

	if req.Attachment != nil && req.Attachment.Content != nil {
		part, err := w.CreateFormFile("attachment", req.Attachment.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := io.Copy(part, req.Attachment.Content); err != nil {
			return nil, fmt.Errorf("failed to copy attachment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	var ack EmailAck
	err := c.doJSON(ctx, "send email", http.MethodPost, c.endpoint("send_email"), &buf, w.FormDataContentType(), &ack)
	if err != nil {
		return nil, err
	}
	return ack, nil
}
