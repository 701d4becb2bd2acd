package fontstack

import (
	"os"
	"testing"
)

// testFontBlob returns the bytes of a system font, skipping the test when
// none is available on this machine.
func testFontBlob(t *testing.T) []byte {
	t.Helper()

	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}

	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}

	t.Skip("no TTF/OTF font available on this machine")
	return nil
}

func TestLoadReportsFaces(t *testing.T) {
	blob := testFontBlob(t)

	faces, err := Load(blob)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(faces) == 0 {
		t.Fatal("expected at least one face")
	}

	f := faces[0]
	if f.FamilyName == "" {
		t.Error("expected non-empty family name")
	}
	if len(f.Points) == 0 {
		t.Error("expected at least one covered codepoint")
	}
	if f.Points[0] == 0 {
		t.Error("codepoint 0 should never be reported")
	}
	for i := 1; i < len(f.Points); i++ {
		if f.Points[i] <= f.Points[i-1] {
			t.Fatalf("points not strictly increasing at index %d: %v", i, f.Points[i-1:i+1])
		}
	}
}

func TestLoadMalformedBlob(t *testing.T) {
	_, err := Load([]byte("not a font"))
	if err == nil {
		t.Fatal("expected error for malformed blob")
	}
}

func TestRangeASCII(t *testing.T) {
	blob := testFontBlob(t)

	out, err := Range(blob, 0, 256)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}

func TestRangeSingleCodepoint(t *testing.T) {
	blob := testFontBlob(t)

	full, err := Range(blob, 0, 256)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	single, err := Range(blob, 65, 65)
	if err != nil {
		t.Fatalf("Range(65,65) failed: %v", err)
	}
	if len(full) == 0 || len(single) == 0 {
		t.Fatal("expected non-empty output from both calls")
	}
}

func TestRangeMalformedBlob(t *testing.T) {
	_, err := Range([]byte("not a font"), 0, 10)
	if err == nil {
		t.Fatal("expected error for malformed blob")
	}
}

func TestRangeMissingCodepointProducesEmptyFontstack(t *testing.T) {
	blob := testFontBlob(t)

	out, err := Range(blob, 65535, 65535)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected a fontstack record even with no glyphs")
	}
}

func TestRangeDeterministic(t *testing.T) {
	blob := testFontBlob(t)

	a, err := Range(blob, 65, 90)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	b, err := Range(blob, 65, 90)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("output length differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs between identical renders", i)
		}
	}
}
