package ziphdr_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ziphdr"
	"github.com/meigma/ziphdr/internal/testutil"
)

func trailerOnly(t *testing.T, comment string, headers ...*ziphdr.Header) []byte {
	t.Helper()
	d := ziphdr.NewDirectory()
	for _, h := range headers {
		d.Add(h)
	}
	require.NoError(t, d.SetComment(comment))
	tr, err := d.Encode(context.Background(), 0)
	require.NoError(t, err)
	return tr.Bytes()
}

func TestReadDirectoryCodePage437(t *testing.T) {
	t.Parallel()

	// 0x82 is é in code page 437 and invalid as UTF-8.
	raw := &ziphdr.Header{Name: string([]byte{0x82, '.', 't', 'x', 't'}), Modified: 1109619539}
	utf := &ziphdr.Header{Name: "é.txt", Flags: ziphdr.FlagUTF8, Modified: 1109619539}

	data := trailerOnly(t, "", raw, utf)
	a, err := ziphdr.ReadDirectory(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, a.Entries, 2)
	assert.Equal(t, "é.txt", a.Entries[0].Name)
	assert.Equal(t, "é.txt", a.Entries[1].Name)
}

func TestReadDirectorySignatureInComment(t *testing.T) {
	t.Parallel()

	h, err := ziphdr.Normalize(ziphdr.Entry{Name: "a.txt", DOSTime: 1109619539})
	require.NoError(t, err)

	// A fake end record whose comment length runs past the archive.
	comment := "PK\x05\x06" + string(bytes.Repeat([]byte{0x7f}, 18)) + "tail"
	data := trailerOnly(t, comment, h)

	a, err := ziphdr.ReadDirectory(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, a.Entries, 1)
	assert.Equal(t, "a.txt", a.Entries[0].Name)
	assert.Equal(t, comment, a.Comment)
}

func TestReadDirectoryEmptyArchive(t *testing.T) {
	t.Parallel()

	data := testutil.BuildArchive(t, nil, "")
	require.Len(t, data, 22)

	a, err := ziphdr.ReadDirectory(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, a.Entries)
	assert.Zero(t, a.DirectoryOffset)
}

func TestReadDirectoryErrors(t *testing.T) {
	t.Parallel()

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := ziphdr.ReadDirectory(bytes.NewReader([]byte("PK")), 2)
		assert.ErrorIs(t, err, ziphdr.ErrDirectoryNotFound)
	})

	t.Run("no end record", func(t *testing.T) {
		t.Parallel()
		data := bytes.Repeat([]byte{0xAA}, 4096)
		_, err := ziphdr.ReadDirectory(bytes.NewReader(data), int64(len(data)))
		assert.ErrorIs(t, err, ziphdr.ErrDirectoryNotFound)
	})

	t.Run("directory beyond end", func(t *testing.T) {
		t.Parallel()
		end, err := ziphdr.Encode(ziphdr.SchemaEndOfCentralDirectory, ziphdr.Record{
			ziphdr.FieldTotalRecords:    uint16(1),
			ziphdr.FieldDirectorySize:   uint32(46),
			ziphdr.FieldDirectoryOffset: uint32(1000),
		})
		require.NoError(t, err)
		_, err = ziphdr.ReadDirectory(bytes.NewReader(end), int64(len(end)))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("record count exceeds directory", func(t *testing.T) {
		t.Parallel()
		end, err := ziphdr.Encode(ziphdr.SchemaEndOfCentralDirectory, ziphdr.Record{
			ziphdr.FieldTotalRecords: uint16(2),
		})
		require.NoError(t, err)
		_, err = ziphdr.ReadDirectory(bytes.NewReader(end), int64(len(end)))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("corrupt record signature", func(t *testing.T) {
		t.Parallel()
		h, err := ziphdr.Normalize(ziphdr.Entry{Name: "a.txt", DOSTime: 1109619539})
		require.NoError(t, err)
		data := trailerOnly(t, "", h)
		data[0] = 'X'
		_, err = ziphdr.ReadDirectory(bytes.NewReader(data), int64(len(data)))
		assert.ErrorIs(t, err, ziphdr.ErrBadSignature)
	})
}
