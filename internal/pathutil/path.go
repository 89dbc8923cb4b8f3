// Package pathutil provides path manipulation for slash-separated archive paths.
package pathutil

import "strings"

// Sanitize converts a user-provided path to the relative, slash-separated
// form stored in zip headers.
//
// It performs the following transformations:
//   - Converts backslashes to slashes: `a\b` → "a/b"
//   - Collapses consecutive slashes: "a//b" → "a/b"
//   - Strips drive prefixes: "C:/a" → "a"
//   - Strips leading "/", "./" and "../" segments: "/../a" → "a"
//
// Trailing slashes are preserved since they mark directories. Sanitize is
// idempotent. Dot segments after the first regular segment are left alone.
func Sanitize(p string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}

	for {
		switch {
		case hasDrive(p):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "../"):
			p = p[3:]
		case p == "." || p == "..":
			return ""
		default:
			return p
		}
	}
}

// EnsureDirSuffix returns name with exactly one trailing slash.
func EnsureDirSuffix(name string) string {
	return strings.TrimRight(name, "/") + "/"
}

// IsDir reports whether name uses the directory form.
func IsDir(name string) bool {
	return strings.HasSuffix(name, "/")
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
