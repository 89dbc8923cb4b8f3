package ziphdr

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/meigma/ziphdr/internal/charset"
	"github.com/meigma/ziphdr/internal/dostime"
	"github.com/meigma/ziphdr/internal/headers"
	"github.com/meigma/ziphdr/internal/pathutil"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// Entry describes an archive member as supplied by the caller.
type Entry struct {
	// Name is the member path. It is sanitized by Normalize; a trailing
	// slash makes the entry a directory.
	Name string

	// Kind is the member type. The zero value means KindFile.
	Kind EntryKind

	// ModTime is the modification time. The zero value means now.
	ModTime time.Time

	// DOSTime, when non-zero, is used as the packed date-time as is and
	// ModTime is ignored.
	DOSTime uint32

	// Mode holds unix mode bits (e.g. 0o644). Zero means no mode is recorded.
	Mode uint32

	// Store requests the entry be stored without compression.
	Store bool

	// Comment is the per-entry comment recorded in the central directory.
	Comment string

	// Extra is the raw extra field data.
	Extra []byte
}

// Unix file type bits and the MS-DOS directory attribute.
const (
	unixTypeDir     = 0o040000
	unixTypeFile    = 0o100000
	unixTypeSymlink = 0o120000
	msdosDir        = 0x10
)

// hostUnix is the "version made by" high byte for unix hosts. Readers only
// interpret the high 16 bits of the external attributes as a unix mode
// when it is set.
const hostUnix = 3

// Normalize validates e and computes the header fields derived from it.
//
// The name is sanitized and directories get exactly one trailing slash.
// Names and comments must be valid UTF-8; non-ASCII ones set FlagUTF8. A non-zero mode is forced to a
// regular file (or symlink) type and stored in the high 16 bits of the
// external attributes. Directories and stored entries use MethodStore;
// everything else uses MethodDeflate.
//
// The returned header has zero CRC and sizes; call Complete once the data
// has been written.
func Normalize(e Entry, opts ...Option) (*Header, error) {
	cfg := newNormalizeConfig(opts)

	kind := e.Kind
	if kind == "" {
		kind = KindFile
	}
	switch kind {
	case KindFile, KindDirectory, KindSymlink:
	default:
		return nil, fmt.Errorf("%w: %q", ziptype.ErrUnsupportedEntryKind, kind)
	}

	name := pathutil.Sanitize(e.Name)
	if name == "" || !utf8.ValidString(name) {
		return nil, fmt.Errorf("%w: %q", ziptype.ErrInvalidName, e.Name)
	}
	if !utf8.ValidString(e.Comment) {
		return nil, fmt.Errorf("%w: %q", ziptype.ErrInvalidComment, e.Comment)
	}
	if pathutil.IsDir(name) {
		kind = KindDirectory
	}
	if kind == KindDirectory {
		name = pathutil.EnsureDirSuffix(name)
	}

	if err := checkLength("name", len(name)); err != nil {
		return nil, err
	}
	if err := checkLength("comment", len(e.Comment)); err != nil {
		return nil, err
	}
	if err := checkLength("extra field", len(e.Extra)); err != nil {
		return nil, err
	}

	h := &Header{
		Name:          name,
		Kind:          kind,
		Comment:       e.Comment,
		Extra:         e.Extra,
		VersionMadeBy: headers.DefaultVersion,
		VersionNeeded: headers.DefaultVersion,
		Method:        MethodDeflate,
	}

	if charset.NeedsUTF8(name) || charset.NeedsUTF8(e.Comment) {
		h.Flags |= FlagUTF8
	}
	if cfg.dataDescriptor && kind != KindDirectory {
		h.Flags |= FlagDataDescriptor
	}

	if e.Mode != 0 {
		mode := e.Mode&^unixTypeDir | unixTypeFile
		if kind == KindSymlink {
			mode |= unixTypeSymlink
		}
		h.ExternalAttrs = mode << 16
		h.VersionMadeBy = hostUnix<<8 | headers.DefaultVersion
	}
	if kind == KindDirectory {
		h.ExternalAttrs |= msdosDir
	}

	switch {
	case e.DOSTime != 0:
		h.Modified = e.DOSTime
	case e.ModTime.IsZero():
		h.Modified = dostime.Pack(cfg.now(), cfg.utc)
	default:
		h.Modified = dostime.Pack(e.ModTime, cfg.utc)
	}

	if kind == KindDirectory || e.Store || cfg.store || cfg.level == 0 {
		h.Method = MethodStore
	}

	cfg.log().Debug("normalized entry",
		"name", h.Name,
		"kind", h.Kind,
		"method", h.Method,
		"flags", h.Flags,
		"modified", h.Modified)

	return h, nil
}

func checkLength(field string, n int) error {
	if n > headers.MaxVariable {
		return fmt.Errorf("%w: %s is %d bytes", ziptype.ErrFieldTooLong, field, n)
	}
	return nil
}
