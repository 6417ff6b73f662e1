// Package dataset downloads tabular dataset snapshots from a dataset hub
// and caches them on local disk. A snapshot is identified by an
// "owner/dataset" handle; Download returns a local directory holding the
// snapshot's files.
package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultBaseURL is the public dataset API endpoint.
const DefaultBaseURL = "https://www.kaggle.com/api/v1"

type Client struct {
	BaseURL  string
	CacheDir string
	// Username and Key authenticate hub requests when set.
	Username string
	Key      string

	HTTPClient *http.Client
}

// NewClient creates a hub client caching snapshots under cacheDir.
// Credentials are picked up from KAGGLE_USERNAME / KAGGLE_KEY when present.
func NewClient(cacheDir string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		CacheDir:   cacheDir,
		Username:   os.Getenv("KAGGLE_USERNAME"),
		Key:        os.Getenv("KAGGLE_KEY"),
		HTTPClient: http.DefaultClient,
	}
}

// Download fetches the named snapshot and returns the local directory it
// was extracted into. A previously downloaded snapshot is reused without
// touching the network.
func (c *Client) Download(ctx context.Context, source string) (string, error) {
	dir := filepath.Join(c.CacheDir, filepath.FromSlash(source))

	if cached(dir) {
		return dir, nil
	}

	archive, err := c.fetchArchive(ctx, source)
	if err != nil {
		return "", err
	}
	defer os.Remove(archive)

	if err := unzip(archive, dir); err != nil {
		return "", fmt.Errorf("extracting snapshot archive for '%s': %w", source, err)
	}

	return dir, nil
}

// cached reports whether dir already holds at least one file.
func cached(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}

func (c *Client) fetchArchive(ctx context.Context, source string) (string, error) {
	url := c.BaseURL + "/datasets/download/" + source

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}
	if c.Username != "" && c.Key != "" {
		req.SetBasicAuth(c.Username, c.Key)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading dataset '%s': %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading dataset '%s': unexpected status %s", source, resp.Status)
	}

	tmp, err := os.CreateTemp("", "dataset-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating temp archive: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("saving dataset archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("saving dataset archive: %w", err)
	}

	return tmp.Name(), nil
}
