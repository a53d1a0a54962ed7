package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)

	f.Add([]byte{})
	f.Add([]byte("fn main() -> Int { return 0; }\n"))
	f.Add([]byte("struct A<T>(B::C) { x: (Int, T&) -> Int; }"))
	f.Add([]byte("import a::b;\nimport a :: b;\n"))
}

// addTestdataSeeds adds every *.adze file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := os.DirFS(filepath.Join("..", "..", "testdata"))
	paths, err := doublestar.Glob(root, "**/*.adze")
	if err != nil {
		return
	}
	for _, path := range paths {
		src, err := fs.ReadFile(root, path)
		if err != nil {
			continue
		}
		f.Add(clamp(src, maxSeedBytes))
	}
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
