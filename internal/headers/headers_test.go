package headers

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ziphdr/internal/record"
	"github.com/meigma/ziphdr/internal/ziptype"
)

var allIDs = []ID{LocalFile, DataDescriptor, CentralDirectory, EndOfCentralDirectory}

func TestSchemaShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id        ID
		signature uint32
		fixed     int
	}{
		{LocalFile, 0x04034b50, 30},
		{DataDescriptor, 0x08074b50, 16},
		{CentralDirectory, 0x02014b50, 46},
		{EndOfCentralDirectory, 0x06054b50, 22},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.signature, Signature(tt.id))
			assert.Equal(t, tt.fixed, FixedSize(tt.id))
		})
	}
}

func TestSchemaInvariants(t *testing.T) {
	t.Parallel()

	for _, id := range allIDs {
		s, err := Lookup(id)
		require.NoError(t, err)

		seen := make(map[string]record.Field)
		for _, f := range s.Fields {
			if f.Type == record.TypeBytes {
				assert.Zero(t, f.Size, "%s.%s should be variable", id, f.Name)
				lf, ok := seen[f.LengthField]
				require.True(t, ok, "%s.%s length field %q must come first", id, f.Name, f.LengthField)
				assert.NotEqual(t, record.TypeBytes, lf.Type)
			} else {
				assert.Equal(t, f.Type.Width(), f.Size, "%s.%s width", id, f.Name)
			}
			_, dup := seen[f.Name]
			assert.False(t, dup, "%s.%s declared twice", id, f.Name)
			seen[f.Name] = f
		}
		assert.GreaterOrEqual(t, s.MaxSize, s.FixedSize())
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Lookup(ID(99))
	require.ErrorIs(t, err, ziptype.ErrUnknownSchema)

	_, err = Encode(ID(0), record.Record{})
	require.ErrorIs(t, err, ziptype.ErrUnknownSchema)

	_, _, err = Decode(ID(42), []byte{1, 2, 3, 4})
	require.ErrorIs(t, err, ziptype.ErrUnknownSchema)

	assert.Zero(t, Signature(ID(99)))
	assert.Zero(t, FixedSize(ID(99)))
}

func TestEncodeLocalFileLayout(t *testing.T) {
	t.Parallel()

	got, err := Encode(LocalFile, record.Record{
		FieldName:     "a.txt",
		FieldModified: uint32(1109619539),
		FieldMethod:   0,
	})
	require.NoError(t, err)

	want := []byte{
		0x50, 0x4b, 0x03, 0x04, // signature
		0x14, 0x00, // version needed (2.0)
		0x00, 0x00, // flags
		0x00, 0x00, // method: store
		0x53, 0x73, 0x23, 0x42, // packed date-time
		0x00, 0x00, 0x00, 0x00, // crc32
		0x00, 0x00, 0x00, 0x00, // compressed size
		0x00, 0x00, 0x00, 0x00, // uncompressed size
		0x05, 0x00, // name length
		0x00, 0x00, // extra length
		'a', '.', 't', 'x', 't',
	}
	assert.Equal(t, want, got)
}

func TestEncodeDataDescriptor(t *testing.T) {
	t.Parallel()

	got, err := Encode(DataDescriptor, record.Record{
		FieldCRC32:            uint32(0xcbf43926),
		FieldCompressedSize:   9,
		FieldUncompressedSize: 9,
	})
	require.NoError(t, err)
	require.Len(t, got, 16)
	assert.Equal(t, DataDescriptorSignature, binary.LittleEndian.Uint32(got[0:]))
	assert.Equal(t, uint32(0xcbf43926), binary.LittleEndian.Uint32(got[4:]))
	assert.Equal(t, uint32(9), binary.LittleEndian.Uint32(got[8:]))
	assert.Equal(t, uint32(9), binary.LittleEndian.Uint32(got[12:]))
}

func TestCentralDirectoryRoundTrip(t *testing.T) {
	t.Parallel()

	in := record.Record{
		FieldVersionMadeBy:     uint16(0x0314),
		FieldFlags:             uint16(1 << 11),
		FieldMethod:            uint16(8),
		FieldModified:          uint32(1109619539),
		FieldCRC32:             int32(-1),
		FieldCompressedSize:    uint32(100),
		FieldUncompressedSize:  uint32(300),
		FieldExternalAttrs:     uint32(0o100644 << 16),
		FieldLocalHeaderOffset: uint32(1234),
		FieldName:              []byte("dir/ü.txt"),
		FieldExtra:             []byte{0x55, 0x54, 0x01, 0x00, 0x00},
		FieldComment:           []byte("note"),
	}
	data, err := Encode(CentralDirectory, in)
	require.NoError(t, err)
	assert.Len(t, data, 46+len("dir/ü.txt")+5+4)

	out, n, err := Decode(CentralDirectory, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	for k, v := range in {
		assert.Equal(t, v, out[k], "field %s", k)
	}
	assert.Equal(t, uint16(DefaultVersion), out[FieldVersionNeeded])
	assert.Equal(t, uint16(len("dir/ü.txt")), out[FieldNameLen])
	assert.Equal(t, uint16(5), out[FieldExtraLen])
	assert.Equal(t, uint16(4), out[FieldCommentLen])
}

func TestEndOfCentralDirectoryRoundTrip(t *testing.T) {
	t.Parallel()

	in := record.Record{
		FieldRecordsOnDisk:   uint16(3),
		FieldTotalRecords:    uint16(3),
		FieldDirectorySize:   uint32(180),
		FieldDirectoryOffset: uint32(4096),
		FieldComment:         []byte("archive comment"),
	}
	data, err := Encode(EndOfCentralDirectory, in)
	require.NoError(t, err)

	out, n, err := Decode(EndOfCentralDirectory, data)
	require.NoError(t, err)
	assert.Equal(t, 22+len("archive comment"), n)
	for k, v := range in {
		assert.Equal(t, v, out[k], "field %s", k)
	}

	empty, err := Encode(EndOfCentralDirectory, record.Record{})
	require.NoError(t, err)
	out, _, err = Decode(EndOfCentralDirectory, empty)
	require.NoError(t, err)
	assert.Nil(t, out[FieldComment])
}

func TestDecodeBadSignature(t *testing.T) {
	t.Parallel()

	data, err := Encode(DataDescriptor, record.Record{})
	require.NoError(t, err)

	_, _, err = Decode(CentralDirectory, append(data, make([]byte, 46)...))
	assert.ErrorIs(t, err, ziptype.ErrBadSignature)
}

func TestEncodeNameAtBoundary(t *testing.T) {
	t.Parallel()

	name := make([]byte, MaxVariable)
	for i := range name {
		name[i] = 'a'
	}
	data, err := Encode(CentralDirectory, record.Record{
		FieldName:    name,
		FieldExtra:   name,
		FieldComment: name,
	})
	require.NoError(t, err)
	assert.Len(t, data, centralDirectoryMaxSize)

	_, err = Encode(LocalFile, record.Record{FieldName: append(name, 'a')})
	assert.ErrorIs(t, err, ziptype.ErrFieldRange)
}
