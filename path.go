package ziphdr

import "github.com/meigma/ziphdr/internal/pathutil"

// SanitizePath converts a user-provided path to the form stored in headers.
//
// Backslashes become slashes, repeated slashes collapse, and leading drive
// prefixes ("C:"), slashes and "./" or "../" segments are stripped:
//   - `C:\a\b.txt` → "a/b.txt"
//   - "/a/b.txt" → "a/b.txt"
//   - `\\server\share\` → "server/share/"
//
// A trailing slash is kept. SanitizePath is idempotent and returns "" for
// inputs with no remaining path.
func SanitizePath(p string) string {
	return pathutil.Sanitize(p)
}
