package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"simple", "foo.txt", "foo.txt"},
		{"leading slash", "/a/b.txt", "a/b.txt"},
		{"multiple leading slashes", "///a/b.txt", "a/b.txt"},
		{"trailing slash kept", "dir/", "dir/"},
		{"duplicate trailing slashes", "dir//", "dir/"},
		{"internal double slashes", "this/path//file.txt", "this/path/file.txt"},
		{"backslashes", `this\path\file.txt`, "this/path/file.txt"},
		{"leading backslash", `\this/path//file.txt`, "this/path/file.txt"},
		{"drive letter", `C:\a\b.txt`, "a/b.txt"},
		{"lower drive letter", `c:\this\path\file.txt`, "this/path/file.txt"},
		{"drive without slash", "C:a.txt", "a.txt"},
		{"unc path", `\\server\share\`, "server/share/"},
		{"dot prefix", "./a/b", "a/b"},
		{"dotdot prefix", "../../a", "a"},
		{"mixed prefixes", "/./../C:/./x", "x"},
		{"stacked drives", "C:D:/a", "a"},
		{"dot only", ".", ""},
		{"dotdot only", "..", ""},
		{"slash only", "/", ""},
		{"dotdot in middle", "a/../b", "a/../b"},
		{"dot name", ".hidden", ".hidden"},
		{"dotdot name", "..data/x", "..data/x"},
		{"colon later", "a:b/c:d", "b/c:d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "/", "//", `\\`, ".", "..", "./", "../", "C:", "C:/", `C:\`,
		"a", "a/", "/a//b/", `\\server\share\file`, "./.././/a", "C:D:E:/f",
		"/C:/./../x/", "a/./b", "a/../b", "é/ü.txt", "...", "./...", "a:",
		"..//..//a", `.\..\a\b\`, "Z:../Y:./q",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
		assert.NotContains(t, once, `\`, "input %q", in)
		assert.NotContains(t, once, "//", "input %q", in)
		if once != "" {
			assert.NotEqual(t, byte('/'), once[0], "input %q", in)
		}
	}
}

func TestEnsureDirSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dir/", EnsureDirSuffix("dir"))
	assert.Equal(t, "dir/", EnsureDirSuffix("dir/"))
	assert.Equal(t, "a/b/", EnsureDirSuffix("a/b//"))
	assert.True(t, IsDir("dir/"))
	assert.False(t, IsDir("dir"))
}
