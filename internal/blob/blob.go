// Package blob stores item attachments and hands back an opaque
// {public_id, url} reference, the same contract the hosted media service
// used before. The disk implementation serves files from UPLOAD_DIR via
// the router's /uploads static route.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Attachment references a stored blob.
type Attachment struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Store is the attachment storage contract the item handlers depend on.
type Store interface {
	// Save stores the blob under the given folder and returns its
	// reference. The original filename only influences the readable part
	// of the public id.
	Save(ctx context.Context, folder, filename string, r io.Reader) (Attachment, error)
	// Delete removes a stored blob by its public id.
	Delete(ctx context.Context, publicID string) error
}

// DiskStore keeps attachments on the local filesystem.
type DiskStore struct {
	Root    string // e.g. "./uploads"
	BaseURL string // e.g. "http://localhost:5000"
}

// NewDiskStore builds a DiskStore, creating the root directory if needed.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the blob to <root>/<folder>/<uuid>-<slug><ext>. The
// relative path doubles as the public id so Delete needs no lookup.
func (s *DiskStore) Save(ctx context.Context, folder, filename string, r io.Reader) (Attachment, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)

	name := uuid.New().String()
	if readable := slug.Make(base); readable != "" {
		name += "-" + readable
	}

	publicID := path.Join(slug.Make(folder), name+ext)
	dst := filepath.Join(s.Root, filepath.FromSlash(publicID))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return Attachment{}, fmt.Errorf("creating attachment dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return Attachment{}, fmt.Errorf("creating attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return Attachment{}, fmt.Errorf("writing attachment: %w", err)
	}

	return Attachment{
		PublicID: publicID,
		URL:      s.BaseURL + "/uploads/" + publicID,
	}, nil
}

// Delete removes the stored file. A missing file is not an error: the
// callers treat deletes as best-effort cleanup.
func (s *DiskStore) Delete(ctx context.Context, publicID string) error {
	// Refuse ids that would escape the root.
	clean := path.Clean("/" + publicID)
	dst := filepath.Join(s.Root, filepath.FromSlash(clean))

	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting attachment: %w", err)
	}
	return nil
}
