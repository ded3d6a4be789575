// Package testutil provides shared test infrastructure for the namelist
// packages: golden-file loading and float comparison helpers.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenUUID is the run identifier stamped into the golden files.
const GoldenUUID = "0b6e8c52-6c5f-4f2e-9d3a-2a7f1c9e4b10"

// GoldenOutputRoot is the stats_io.output_root recorded in the golden files.
const GoldenOutputRoot = "./output/"

// LoadGolden reads a golden file from the repository's testdata directory.
// The path is resolved relative to this source file: namelist/internal/testutil/ → testdata/.
func LoadGolden(t *testing.T, name string) []byte {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", name, err)
	}
	return data
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
