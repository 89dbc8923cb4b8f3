package testutil

import (
	"bytes"
	"context"
	"hash/crc32"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ziphdr"
)

// TestEntry holds an entry and its content for building test archives.
type TestEntry struct {
	Entry ziphdr.Entry
	Data  []byte
}

// BuildArchive writes a complete zip archive the way a streaming engine
// would: local header, data, data descriptor when flagged, and finally the
// central directory. Deflate entries are compressed with klauspost flate.
func BuildArchive(tb testing.TB, entries []TestEntry, comment string, opts ...ziphdr.Option) []byte {
	tb.Helper()

	var buf bytes.Buffer
	dir := ziphdr.NewDirectory()
	require.NoError(tb, dir.SetComment(comment))

	for _, te := range entries {
		h, err := ziphdr.Normalize(te.Entry, opts...)
		require.NoError(tb, err, "normalize %q", te.Entry.Name)
		require.NoError(tb, h.SetOffset(uint64(buf.Len())))

		payload := te.Data
		if h.IsDir() {
			payload = nil
		}
		stored := payload
		if h.Method == ziphdr.MethodDeflate {
			stored = Deflate(tb, payload)
		}
		require.NoError(tb, h.Complete(crc32.ChecksumIEEE(payload), uint64(len(stored)), uint64(len(payload))))

		local, err := h.LocalFileHeader()
		require.NoError(tb, err)
		buf.Write(local)
		buf.Write(stored)

		if h.Flags&ziphdr.FlagDataDescriptor != 0 {
			desc, err := h.DataDescriptor()
			require.NoError(tb, err)
			buf.Write(desc)
		}
		dir.Add(h)
	}

	trailer, err := dir.Encode(context.Background(), uint64(buf.Len()))
	require.NoError(tb, err)
	_, err = trailer.WriteTo(&buf)
	require.NoError(tb, err)

	return buf.Bytes()
}

// Deflate compresses data with the default level.
func Deflate(tb testing.TB, data []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(tb, err)
	_, err = w.Write(data)
	require.NoError(tb, err)
	require.NoError(tb, w.Close())
	return buf.Bytes()
}
