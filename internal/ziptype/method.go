// Package ziptype defines shared types used across the ziphdr package and its
// internal packages. This avoids circular imports between ziphdr and the
// internal codec packages.
package ziptype

import "github.com/klauspost/compress/zip"

// Method identifies the compression method recorded for an entry.
type Method uint16

const (
	MethodStore   Method = Method(zip.Store)
	MethodDeflate Method = Method(zip.Deflate)
)

func (m Method) String() string {
	switch m {
	case MethodStore:
		return "store"
	case MethodDeflate:
		return "deflate"
	default:
		return "unknown"
	}
}
