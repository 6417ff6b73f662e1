package dataset

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDownload(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"churn.csv": "customerID,TotalCharges\nA,10.5\n",
	})

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/datasets/download/owner/churn" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write(archive)
	}))
	defer srv.Close()

	c := NewClient(t.TempDir())
	c.BaseURL = srv.URL

	dir, err := c.Download(context.Background(), "owner/churn")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "churn.csv"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(data) != "customerID,TotalCharges\nA,10.5\n" {
		t.Errorf("unexpected file contents: %q", data)
	}

	// Second download hits the cache, not the network.
	again, err := c.Download(context.Background(), "owner/churn")
	if err != nil {
		t.Fatalf("cached Download failed: %v", err)
	}
	if again != dir {
		t.Errorf("cache returned different directory: %s vs %s", again, dir)
	}
	if requests != 1 {
		t.Errorf("expected 1 network request, got %d", requests)
	}
}

func TestDownloadAuthHeader(t *testing.T) {
	archive := zipArchive(t, map[string]string{"data.csv": "customerID\nA\n"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, key, ok := r.BasicAuth()
		if !ok || user != "alice" || key != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write(archive)
	}))
	defer srv.Close()

	c := NewClient(t.TempDir())
	c.BaseURL = srv.URL
	c.Username = "alice"
	c.Key = "s3cret"

	if _, err := c.Download(context.Background(), "owner/churn"); err != nil {
		t.Fatalf("authenticated Download failed: %v", err)
	}
}

func TestDownloadBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(t.TempDir())
	c.BaseURL = srv.URL

	if _, err := c.Download(context.Background(), "owner/missing"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestUnzipRejectsPathTraversal(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("../evil.txt")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	f.Write([]byte("nope"))
	w.Close()

	tmp := filepath.Join(t.TempDir(), "evil.zip")
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}

	if err := unzip(tmp, t.TempDir()); err == nil {
		t.Fatal("expected error for archive entry escaping the target directory")
	}
}
