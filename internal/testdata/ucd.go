package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Path returns the path for the given data file, which lives in
// sub-directory "data" of this package. Run `go run download.go` to
// populate it.
func Path(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "data", file)
}

// Available is true if all of the given data files have been downloaded.
func Available(files ...string) bool {
	for _, f := range files {
		if _, err := os.Stat(Path(f)); err != nil {
			return false
		}
	}
	return true
}

// Data files used by integration tests.
const (
	UnihanIRGSources     = "Unihan_IRGSources.txt"
	UnihanDictionaryLike = "Unihan_DictionaryLikeData.txt"
	UnihanRadicalStrokes = "Unihan_RadicalStrokeCounts.txt"
	IDS                  = "IDS.TXT"
)
