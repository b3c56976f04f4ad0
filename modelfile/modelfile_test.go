package modelfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groveml/grove/format"
)

func TestCompressionByExtension(t *testing.T) {
	require.Equal(t, format.CompressionZstd, Compression("model.bin.zst"))
	require.Equal(t, format.CompressionLZ4, Compression("model.lz4"))
	require.Equal(t, format.CompressionS2, Compression("model.s2"))
	require.Equal(t, format.CompressionNone, Compression("model.bin"))
	require.Equal(t, format.CompressionNone, Compression("model"))
}

func TestExtension(t *testing.T) {
	require.Equal(t, ".zst", Extension(format.CompressionZstd))
	require.Equal(t, ".lz4", Extension(format.CompressionLZ4))
	require.Equal(t, ".s2", Extension(format.CompressionS2))
	require.Equal(t, "", Extension(format.CompressionNone))
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// A plausible model payload: header plus one branch record.
	data := []byte{1, 0, 0, 0, 1, 2, 0, 0, 1, 0, 2, 0, 0, 0, 0, 0x3F, 0, 0, 0, 0xC0}

	for _, name := range []string{"model.bin", "model.bin.zst", "model.bin.lz4", "model.bin.s2"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			require.NoError(t, Write(path, data))

			got, err := Read(path)
			require.NoError(t, err)
			require.Equal(t, data, got)
		})
	}
}

func TestWriteCompresses(t *testing.T) {
	dir := t.TempDir()

	// 64KB of zeros shrinks under any real codec.
	data := make([]byte, 64*1024)
	path := filepath.Join(dir, "model.bin.zst")

	require.NoError(t, Write(path, data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Less(t, info.Size(), int64(len(data)))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestReadCorruptedCompressedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin.zst")
	require.NoError(t, os.WriteFile(path, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0o644))

	_, err := Read(path)
	require.Error(t, err)
}
