package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file — a single face or a TTC
// collection. FontSource is heavyweight: parse once per job, then iterate
// Faces().
//
// FontSource must not be copied after creation (enforced by copyCheck, the
// Ebitengine copy-protection pattern).
type FontSource struct {
	// addr must point to the FontSource itself; used to detect copies.
	addr *FontSource

	mu    sync.RWMutex
	data  []byte
	faces []*sfnt.Font
}

// NewFontSource parses font data (TTF, OTF, or TTC) into a FontSource. The
// data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	faces, err := parseFaces(dataCopy)
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	s := &FontSource{data: dataCopy, faces: faces}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// parseFaces tries the data as a font collection first — sfnt.ParseCollection
// also accepts a lone, non-collection font and returns it as a
// single-element collection — so this single call covers both cases the
// range encoder and face enumerator need to distinguish (spec.md §4.6/§4.7
// "for each face in the font collection").
func parseFaces(data []byte) ([]*sfnt.Font, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	n := coll.NumFonts()
	faces := make([]*sfnt.Font, 0, n)
	for i := 0; i < n; i++ {
		f, err := coll.Font(i)
		if err != nil {
			// A corrupt non-first face aborts the whole job rather than
			// being skipped; see spec.md §9.
			return nil, fmt.Errorf("text: failed to open face %d: %w", i, err)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// Faces returns every face parsed from the source, in collection order.
func (s *FontSource) Faces() []*sfnt.Font {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.faces
}

// Close releases the FontSource. Faces obtained from it must not be used
// afterward.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.faces = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
