// Package text loads font blobs — single TTF/OTF files or TTC collections —
// into golang.org/x/image/font/sfnt.Font values ready for outline
// decomposition and metrics queries.
//
// It is the font-ingestion boundary shared by the fontstack range encoder
// and face enumerator: one FontSource per job, opened once, walked face by
// face.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	for _, face := range source.Faces() {
//	    name := text.FamilyName(face, nil)
//	    ...
//	}
package text
