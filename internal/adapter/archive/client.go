// Package archive implements the local file cache over the Met Office
// HadCRUT5 download archive. A dataset file already present in the cache
// directory is used as-is; otherwise it is fetched over HTTPS and streamed
// to disk. Presence alone determines a cache hit — no checksums, no
// freshness checks, no retries.
package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/observability"
)

// archivePath is the fixed path template between the base host and the
// version segment.
const archivePath = "/hadobs/hadcrut5/data/"

// downloadBlockSize is the streaming block size for response bodies.
const downloadBlockSize = 1024

// Client downloads dataset files into a local cache directory.
// It implements dataset.Fetcher.
type Client struct {
	baseURL     string
	versionPath string
	cacheDir    string
	httpClient  *http.Client
	clock       clockwork.Clock
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewClient creates an archive client. baseURL is the archive host
// (e.g. "https://www.metoffice.gov.uk"), versionPath the dataset version
// segment of the archive layout (e.g. "current"), and cacheDir the directory
// holding downloaded files. The clock times downloads; pass
// clockwork.NewRealClock() outside of tests.
func NewClient(baseURL, versionPath, cacheDir string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:     baseURL,
		versionPath: versionPath,
		cacheDir:    cacheDir,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// EnsureLocal makes sure filename exists in the cache directory, downloading
// it on a miss. Connection failures and timeouts wrap dataset.ErrNetwork;
// a 4xx/5xx response wraps dataset.ErrRemoteFetch. A failed download may
// leave a partial file behind (legacy cache behavior).
func (c *Client) EnsureLocal(ctx context.Context, filename string) error {
	path := filepath.Join(c.cacheDir, filename)
	if _, err := os.Stat(path); err == nil {
		c.metrics.CacheHits.Inc()
		c.logger.Debug("using local dataset file", "file", filename)
		return nil
	}

	url := c.baseURL + archivePath + c.versionPath + "/analysis/diagnostics/" + filename
	c.logger.Info("downloading dataset file", "url", url)
	start := c.clock.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", filename, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetch %s: %v", dataset.ErrNetwork, filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", dataset.ErrRemoteFetch, url, resp.StatusCode)
	}

	written, err := c.writeBlocks(path, resp.Body)
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", dataset.ErrNetwork, filename, err)
	}

	c.metrics.DatasetDownloads.Inc()
	c.metrics.DownloadBytes.Add(float64(written))
	c.metrics.DownloadDuration.Observe(c.clock.Since(start).Seconds())
	c.logger.Info("download complete",
		"file", filename,
		"bytes", written,
		"duration", c.clock.Since(start),
	)
	return nil
}

// writeBlocks streams body to path in fixed-size blocks. It writes to the
// final filename directly: a crash mid-download leaves a partial file that a
// later run treats as cached, matching the original tooling.
func (c *Client) writeBlocks(path string, body io.Reader) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	// The writer is wrapped so CopyBuffer cannot bypass the block size via
	// the ReaderFrom fast path of *os.File.
	buf := make([]byte, downloadBlockSize)
	return io.CopyBuffer(struct{ io.Writer }{out}, body, buf)
}
