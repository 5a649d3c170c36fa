package vfs_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontpack/internal/adapters/vfs"
	"go.trai.ch/fontpack/internal/core/domain"
)

func shapes() []vfs.CacheShape {
	return []vfs.CacheShape{vfs.ShapeKeyed, vfs.ShapeLegacy}
}

func TestOverlay_StaleReadWithoutInvalidate(t *testing.T) {
	for _, shape := range shapes() {
		t.Run(string(shape), func(t *testing.T) {
			cache, err := vfs.NewReadCache(shape)
			require.NoError(t, err)
			overlay := vfs.NewOverlay(cache)
			path := "/virtual/set1.woff"

			require.NoError(t, overlay.Write(path, []byte("v1"), domain.Timestamps{}))
			got, err := overlay.Read(path)
			require.NoError(t, err)
			assert.Equal(t, "v1", string(got))

			// A write that skips invalidation keeps serving the cached read.
			require.NoError(t, overlay.Write(path, []byte("v2"), domain.Timestamps{}))
			got, err = overlay.Read(path)
			require.NoError(t, err)
			assert.Equal(t, "v1", string(got))

			overlay.Invalidate(path)
			got, err = overlay.Read(path)
			require.NoError(t, err)
			assert.Equal(t, "v2", string(got))
		})
	}
}

func TestOverlay_InvalidateBeforeWrite(t *testing.T) {
	for _, shape := range shapes() {
		t.Run(string(shape), func(t *testing.T) {
			cache, err := vfs.NewReadCache(shape)
			require.NoError(t, err)
			overlay := vfs.NewOverlay(cache)
			path := "/virtual/set1.ttf"

			require.NoError(t, overlay.Write(path, []byte("old"), domain.Timestamps{}))
			_, err = overlay.Read(path)
			require.NoError(t, err)

			overlay.Invalidate(path)
			require.NoError(t, overlay.Write(path, []byte("new"), domain.Timestamps{}))

			got, err := overlay.Read(path)
			require.NoError(t, err)
			assert.Equal(t, "new", string(got))
		})
	}
}

func TestOverlay_InvalidateUnknownPath(t *testing.T) {
	for _, shape := range shapes() {
		cache, err := vfs.NewReadCache(shape)
		require.NoError(t, err)
		overlay := vfs.NewOverlay(cache)
		assert.NotPanics(t, func() { overlay.Invalidate("/virtual/none.svg") })
	}
}

func TestOverlay_ReadMissing(t *testing.T) {
	overlay := vfs.NewOverlay(vfs.NewKeyedCache())
	_, err := overlay.Read("/virtual/missing.eot")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverlay_WriteRequiresAbsolutePath(t *testing.T) {
	overlay := vfs.NewOverlay(vfs.NewKeyedCache())
	require.Error(t, overlay.Write("relative.woff", nil, domain.Timestamps{}))
}

func TestOverlay_TimesAndDigest(t *testing.T) {
	overlay := vfs.NewOverlay(vfs.NewLegacyCache())
	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	times := domain.Timestamps{Atime: mtime, Mtime: mtime, Ctime: mtime}

	require.NoError(t, overlay.Write("/virtual/a.svg", []byte("a"), times))

	got, ok := overlay.Times("/virtual/a.svg")
	require.True(t, ok)
	assert.Equal(t, times, got)

	d1, ok := overlay.Digest("/virtual/a.svg")
	require.True(t, ok)
	require.NoError(t, overlay.Write("/virtual/b.svg", []byte("a"), times))
	d2, _ := overlay.Digest("/virtual/b.svg")
	assert.Equal(t, d1, d2)

	assert.Equal(t, []string{"/virtual/a.svg", "/virtual/b.svg"}, overlay.Paths())
}

func TestOverlay_Flush(t *testing.T) {
	outDir := t.TempDir()
	overlay := vfs.NewOverlay(vfs.NewKeyedCache())
	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, overlay.Write("/src/fonts/set1.woff", []byte("woff"), domain.Timestamps{Mtime: mtime}))

	err := overlay.Flush([]string{"/src/fonts/set1.woff"}, func(p string) string {
		return filepath.Join(outDir, "fonts", filepath.Base(p))
	})
	require.NoError(t, err)

	dest := filepath.Join(outDir, "fonts", "set1.woff")
	content, err := os.ReadFile(dest) //nolint:gosec // Test file with controlled path
	require.NoError(t, err)
	assert.Equal(t, "woff", string(content))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestNewReadCache_UnknownShape(t *testing.T) {
	_, err := vfs.NewReadCache("lru")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCacheShape)
}

func TestReadCache_Concurrent(t *testing.T) {
	for _, shape := range shapes() {
		cache, err := vfs.NewReadCache(shape)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				path := filepath.Join("/virtual", string(rune('a'+i)))
				cache.Store(path, []byte{byte(i)})
				_, _ = cache.Load(path)
				cache.Evict(path)
			}(i)
		}
		wg.Wait()
	}
}

func TestStatTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	mtime := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	times, err := vfs.StatTimes(path)
	require.NoError(t, err)
	assert.True(t, times.Mtime.Equal(mtime))
	assert.True(t, times.Atime.Equal(mtime))
	assert.False(t, times.Ctime.IsZero())

	_, err = vfs.StatTimes(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
