package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var binaryContent = []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe, 0x00, 0x10}

// buildTree lays out
//
//	a.txt          text
//	sub/b.bin      binary
//	sub/link    -> ../a.txt
//	sub/deep/c.md  text
//	dirlink     -> sub
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "a.txt"), []byte("hello world\n"))
	writeFile(t, filepath.Join(root, "sub", "b.bin"), binaryContent)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.md"), []byte("# title\n\nbody\n"))
	symlink(t, filepath.Join("..", "a.txt"), filepath.Join(root, "sub", "link"))
	symlink(t, "sub", filepath.Join(root, "dirlink"))

	return root
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}
