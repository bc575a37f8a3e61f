package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/01moynul/review-seller-golang/internal/blob"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	store, err := blob.NewDiskStore(t.TempDir(), "http://localhost:5000/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	att, err := store.Save(ctx, "Marketplace Reviews", "My Gig Photo.PNG", strings.NewReader("pngbytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(att.PublicID, "marketplace-reviews/") {
		t.Fatalf("expected slugged folder prefix, got %q", att.PublicID)
	}
	if !strings.HasSuffix(att.PublicID, ".PNG") {
		t.Fatalf("expected original extension kept, got %q", att.PublicID)
	}
	if att.URL != "http://localhost:5000/uploads/"+att.PublicID {
		t.Fatalf("unexpected url %q", att.URL)
	}

	dst := filepath.Join(store.Root, filepath.FromSlash(att.PublicID))
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "pngbytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}

	if err := store.Delete(ctx, att.PublicID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err: %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, att.PublicID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store, err := blob.NewDiskStore(t.TempDir(), "http://localhost:5000")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	a, err := store.Save(ctx, "social-media-boost", "banner.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := store.Save(ctx, "social-media-boost", "banner.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.PublicID == b.PublicID {
		t.Fatalf("expected unique public ids for same filename, got %q", a.PublicID)
	}
}
