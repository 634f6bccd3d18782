// Package storage provides blob storage for resume files behind a narrow
// interface. The backing service is S3-compatible.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// FileStorer is the blob boundary the rest of the backend depends on.
type FileStorer interface {
	Upload(ctx context.Context, file io.Reader, key, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// ResumeKey builds the canonical object key for a candidate's resume file.
// The original filename is flattened to its base name so caller-supplied
// paths cannot escape the resumes/ prefix.
func ResumeKey(candidateID uuid.UUID, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return fmt.Sprintf("resumes/%s/%s", candidateID, base)
}
