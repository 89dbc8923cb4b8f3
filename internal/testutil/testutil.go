// Package testutil provides helpers for building zip archives in tests.
package testutil

import (
	"io"
	"sync"
)

// ReadRange is one ReadAt call observed by an ArchiveSource.
type ReadRange struct {
	Off int64
	Len int
}

// ArchiveSource is an in-memory io.ReaderAt that records every read, so
// tests can check which parts of an archive a reader touched.
type ArchiveSource struct {
	data []byte

	mu    sync.Mutex
	reads []ReadRange
}

// NewArchiveSource returns a source backed by data.
func NewArchiveSource(data []byte) *ArchiveSource {
	return &ArchiveSource{data: data}
}

// ReadAt implements io.ReaderAt over the backing slice.
func (s *ArchiveSource) ReadAt(p []byte, off int64) (int, error) {
	s.mu.Lock()
	s.reads = append(s.reads, ReadRange{Off: off, Len: len(p)})
	s.mu.Unlock()

	if off >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the length of the backing data.
func (s *ArchiveSource) Size() int64 {
	return int64(len(s.data))
}

// Reads returns a copy of the recorded reads in call order.
func (s *ArchiveSource) Reads() []ReadRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ReadRange(nil), s.reads...)
}
