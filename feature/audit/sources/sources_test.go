package sources

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roll-checker/core/reconcile"
	"roll-checker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const folderPage = `<html><body>
<div data-id="1"><div data-tooltip="18842826001.pdf"></div><span>1 MB</span></div>
<div data-id="2"><span>18842826002.pdf</span><span>2 MB</span></div>
<div data-id="3"><span>cover.jpg</span></div>
</body></html>`

func TestDirectory_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "18842826001.pdf"), []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "18842826002.PDF"), []byte("abcdef"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755))

	src := NewDirectory(dir, "pdf")
	assert.Equal(t, KindLocal, src.Kind())
	assert.Equal(t, dir, src.Location())

	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []reconcile.FileEntry{
		{Name: "18842826001.pdf", SizeBytes: 3},
		{Name: "18842826002.PDF", SizeBytes: 6},
	}, entries)
}

func TestDirectory_NoExtensionKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))

	entries, err := NewDirectory(dir, "").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDirectory_Missing(t *testing.T) {
	_, err := NewDirectory(filepath.Join(t.TempDir(), "gone"), "pdf").Load(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func objectChannel(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func TestBucket_Load(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "rolls").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "rolls", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "2024/" && opts.Recursive
	})).Return(objectChannel(
		minio.ObjectInfo{Key: "2024/"},
		minio.ObjectInfo{Key: "2024/a/18842826001.pdf", Size: 10},
		minio.ObjectInfo{Key: "2024/18842826002.pdf", Size: 20},
		minio.ObjectInfo{Key: "2024/readme.md", Size: 1},
	))

	src := NewBucket(mockClient, "rolls", "/2024", ".pdf")
	assert.Equal(t, "rolls/2024/", src.Location())
	assert.Equal(t, "bucket:rolls/2024/|.pdf", src.CacheKey())

	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.FileEntry{
		{Name: "18842826001.pdf", SizeBytes: 10},
		{Name: "18842826002.pdf", SizeBytes: 20},
	}, entries)
	mockClient.AssertExpectations(t)
}

func TestBucket_Errors(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "rolls").Return(false, nil)

		_, err := NewBucket(mockClient, "rolls", "", "pdf").Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("List Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "rolls").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "rolls", mock.Anything).
			Return(objectChannel(minio.ObjectInfo{Err: assert.AnError}))

		_, err := NewBucket(mockClient, "rolls", "", "pdf").Load(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestReadSnapshot(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		snap, err := ReadSnapshot(strings.NewReader(`  {"rows":["18842826007.pdf\n3 MB"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"18842826007.pdf\n3 MB"}, snap.Rows)
	})

	t.Run("HTML", func(t *testing.T) {
		snap, err := ReadSnapshot(strings.NewReader(folderPage))
		require.NoError(t, err)
		assert.Len(t, snap.Rows, 3)
	})

	t.Run("Empty", func(t *testing.T) {
		snap, err := ReadSnapshot(strings.NewReader(" \n"))
		require.NoError(t, err)
		assert.True(t, snap.Empty())
	})

	t.Run("Broken JSON", func(t *testing.T) {
		_, err := ReadSnapshot(strings.NewReader(`{"rows":`))
		assert.Error(t, err)
	})
}

func TestSnapshot_Sources(t *testing.T) {
	want := []reconcile.FileEntry{
		{Name: "18842826001.pdf", SizeBytes: 0},
		{Name: "18842826002.pdf", SizeBytes: 2 * 1024 * 1024},
	}

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(folderPage), 0o644))

		src := NewSnapshotFile(path, "pdf")
		assert.Equal(t, KindSnapshot, src.Kind())
		entries, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, entries)
	})

	t.Run("Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "rolls", "snapshots/page.html", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(folderPage))), nil)

		src := NewSnapshotObject(mockClient, "rolls", "snapshots/page.html", "pdf")
		assert.Equal(t, "rolls/snapshots/page.html", src.Location())
		entries, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, entries)
	})

	t.Run("Bytes", func(t *testing.T) {
		entries, err := NewSnapshotBytes([]byte(folderPage), "pdf").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, entries)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := NewSnapshotFile(filepath.Join(t.TempDir(), "none.html"), "pdf").Load(context.Background())
		assert.Error(t, err)
	})
}

func TestFolderID(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://drive.google.com/drive/folders/1AbC-d_E?usp=sharing", "1AbC-d_E", true},
		{"https://drive.google.com/open?id=XYZ123", "XYZ123", true},
		{"https://example.com/list?page=2&id=abc", "abc", true},
		{"https://example.com/nothing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := FolderID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemote_Load(t *testing.T) {
	agents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(folderPage))
	}))
	defer srv.Close()

	src := NewRemote(srv.URL+"/drive/folders/abc", "pdf", RemoteConfig{UserAgent: "roll-checker-test", TimeoutSeconds: 5})
	assert.Equal(t, KindRemote, src.Kind())
	assert.Equal(t, "remote:"+srv.URL+"/drive/folders/abc|.pdf", src.CacheKey())

	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "roll-checker-test", <-agents)
}

func TestRemote_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, "pdf", RemoteConfig{TimeoutSeconds: 5}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestRemote_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := NewRemote("http://127.0.0.1:1/", "pdf", RemoteConfig{}).Load(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
