// Package ziphdr builds and parses the binary headers of zip archives.
//
// The package is the layer between an archive writer and the bytes it emits.
// It normalizes caller-supplied entry metadata (path, timestamp, permission
// bits) and packs it into the records the format requires:
//   - Local file header: written before each entry's data
//   - Data descriptor: written after the data once CRC and sizes are known
//   - Central directory record: one per entry in the trailing index
//   - End of central directory record: terminates the archive
//
// Compression, CRC accumulation and stream management stay with the caller.
//
// # Quick Start
//
// Normalize an entry and encode its local header:
//
//	h, err := ziphdr.Normalize(ziphdr.Entry{
//	    Name:    "docs/readme.txt",
//	    ModTime: info.ModTime(),
//	    Mode:    0o644,
//	})
//	if err != nil {
//	    return err
//	}
//	hdr, err := h.LocalFileHeader()
//
// After streaming the data, record the results and emit the descriptor:
//
//	if err := h.Complete(crc, compressed, uncompressed); err != nil {
//	    return err
//	}
//	desc, err := h.DataDescriptor()
//
// Collect headers in a [Directory] and encode the trailer when done:
//
//	dir := ziphdr.NewDirectory()
//	dir.Add(h)
//	trailer, err := dir.Encode(ctx, bytesWritten)
//
// # Records
//
// The lower-level [Encode] and [Decode] functions work on [Record] values,
// maps from field name to value, for any of the four [SchemaID] layouts.
// Length fields are always derived from the data they describe.
//
// # Reading
//
// [ReadDirectory] locates and decodes the central directory of an existing
// archive. Names without the UTF-8 flag are decoded from code page 437.
package ziphdr
