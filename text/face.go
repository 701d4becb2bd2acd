package text

import "golang.org/x/image/font/sfnt"

// FamilyName returns the font's family name, falling back to the full
// name, then "".
func FamilyName(f *sfnt.Font, buf *sfnt.Buffer) string {
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

// StyleName returns the font's subfamily (style) name, or "" when the
// face reports none.
func StyleName(f *sfnt.Font, buf *sfnt.Buffer) string {
	name, err := f.Name(buf, sfnt.NameIDSubfamily)
	if err != nil {
		return ""
	}
	return name
}
