// Package corpus acquires the bAbI tasks archive and extracts the split
// files of a challenge.
package corpus

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const (
	// DefaultURL hosts the bAbI tasks v1.2 archive.
	DefaultURL = "https://s3.amazonaws.com/text-datasets/babi_tasks_1-20_v1-2.tar.gz"

	// ArchiveName is the file name used inside the cache directory.
	ArchiveName = "babi-tasks-v1-2.tar.gz"
)

// AcquisitionError reports a failed archive download. It carries the manual
// remediation steps shown to the user; the caller treats it as fatal.
type AcquisitionError struct {
	URL  string
	Path string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("corpus unavailable: downloading %s: %v", e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// Remediation returns the manual download instructions.
func (e *AcquisitionError) Remediation() string {
	return fmt.Sprintf("Error downloading dataset, please download it manually:\n"+
		"$ wget %s\n"+
		"$ mv %s %s", e.URL, filepath.Base(e.URL), e.Path)
}

// Fetcher downloads the corpus archive into a local cache directory.
type Fetcher struct {
	URL      string
	CacheDir string

	// Progress, if set, is called with the bytes copied so far and the
	// total (-1 when the server does not announce a length).
	Progress func(written, total int64)

	Client *http.Client
}

// NewFetcher creates a Fetcher for the default archive URL.
func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{URL: DefaultURL, CacheDir: cacheDir}
}

// DefaultCacheDir returns the per-user cache directory for archives.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".babiprep"
	}
	return filepath.Join(dir, "babiprep")
}

// Fetch returns the local path of the archive, downloading it into the
// cache directory when not already present. A failed download is returned
// as *AcquisitionError.
func (f *Fetcher) Fetch() (string, error) {
	path := filepath.Join(f.CacheDir, ArchiveName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := f.download(path); err != nil {
		return "", &AcquisitionError{URL: f.URL, Path: path, Err: err}
	}

	return path, nil
}

func (f *Fetcher) download(path string) error {
	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return err
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(f.URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Download to a temporary name and rename, so an interrupted transfer
	// never poisons the cache.
	tmp, err := os.CreateTemp(f.CacheDir, ArchiveName+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	var r io.Reader = resp.Body
	if f.Progress != nil {
		r = &progressReader{r: resp.Body, total: resp.ContentLength, fn: f.Progress}
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

type progressReader struct {
	r       io.Reader
	total   int64
	written int64
	fn      func(written, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.written += int64(n)
	p.fn(p.written, p.total)
	return n, err
}

// OpenSplit returns the contents of one member file of the tar.gz archive.
func OpenSplit(archivePath, member string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip error: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tar error: %w", err)
		}

		if hdr.Name == member {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("tar error: %w", err)
			}
			return data, nil
		}
	}

	return nil, fmt.Errorf("member %q not found in %s", member, archivePath)
}
