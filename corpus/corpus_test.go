package corpus

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const trainContent = `1 Mary moved to the bathroom.
2 Where is Mary?	bathroom	1
`

func buildArchive(t *testing.T, members map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for name, content := range members {
		hdr := &tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("write member: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}

	return buf.Bytes()
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	archive := buildArchive(t, map[string]string{"tasks/qa1_train.txt": trainContent})

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(archive)
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := &Fetcher{URL: srv.URL, CacheDir: dir}

	path, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if path != filepath.Join(dir, ArchiveName) {
		t.Errorf("path = %q, want it inside the cache dir", path)
	}

	// Second fetch must hit the cache, not the server.
	if _, err := f.Fetch(); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestFetchReportsProgress(t *testing.T) {
	archive := buildArchive(t, map[string]string{"a.txt": trainContent})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	var last, total int64
	f := &Fetcher{
		URL:      srv.URL,
		CacheDir: t.TempDir(),
		Progress: func(w, t int64) { last, total = w, t },
	}

	if _, err := f.Fetch(); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if last != int64(len(archive)) {
		t.Errorf("last written = %d, want %d", last, len(archive))
	}
	if total != int64(len(archive)) {
		t.Errorf("total = %d, want %d", total, len(archive))
	}
}

func TestFetchFailureIsAcquisitionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := &Fetcher{URL: srv.URL, CacheDir: t.TempDir()}

	_, err := f.Fetch()
	if err == nil {
		t.Fatal("expected error")
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("error %v is not an AcquisitionError", err)
	}

	remediation := acqErr.Remediation()
	if !strings.Contains(remediation, "wget") || !strings.Contains(remediation, srv.URL) {
		t.Errorf("remediation lacks manual download instructions: %q", remediation)
	}

	// Nothing must be left behind in the cache.
	if _, statErr := os.Stat(filepath.Join(f.CacheDir, ArchiveName)); statErr == nil {
		t.Error("failed download left an archive in the cache")
	}
}

func TestOpenSplit(t *testing.T) {
	members := map[string]string{
		"tasks/qa1_train.txt": trainContent,
		"tasks/qa1_test.txt":  "1 John went home.\n",
	}
	archive := buildArchive(t, members)

	path := filepath.Join(t.TempDir(), ArchiveName)
	if err := os.WriteFile(path, archive, 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	data, err := OpenSplit(path, "tasks/qa1_train.txt")
	if err != nil {
		t.Fatalf("OpenSplit: %v", err)
	}
	if string(data) != trainContent {
		t.Errorf("content = %q, want %q", data, trainContent)
	}

	if _, err := OpenSplit(path, "tasks/missing.txt"); err == nil {
		t.Error("expected error for missing member")
	}
}

func TestChallengeMember(t *testing.T) {
	c, err := ChallengeByName("two_supporting_facts_10k")
	if err != nil {
		t.Fatalf("ChallengeByName: %v", err)
	}

	want := "tasks_1-20_v1-2/en-10k/qa2_two-supporting-facts_train.txt"
	if got := c.Member("train"); got != want {
		t.Errorf("Member(train) = %q, want %q", got, want)
	}

	if _, err := ChallengeByName("nope"); err == nil {
		t.Error("expected error for unknown challenge")
	}
}
