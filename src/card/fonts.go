package card

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Fixed face sizes for the card layout. Faces are built once from the
// embedded Go fonts; construction cannot fail for them, so errors panic.
var (
	fontsOnce sync.Once

	titleFace     font.Face // bold 42, username
	subtitleFace  font.Face // regular 14, tagline
	readoutFace   font.Face // bold 90, giant duration
	captionFace   font.Face // bold 18, "TOTAL TIME READ"
	statValueFace font.Face // bold 26, stat tile values
	statLabelFace font.Face // regular 10, stat tile labels
	historyFace   font.Face // regular 11, history ticker
)

func loadFaces() {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse gobold: %v", err))
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse goregular: %v", err))
	}
	titleFace = mustFace(bold, 42)
	subtitleFace = mustFace(regular, 14)
	readoutFace = mustFace(bold, 90)
	captionFace = mustFace(bold, 18)
	statValueFace = mustFace(bold, 26)
	statLabelFace = mustFace(regular, 10)
	historyFace = mustFace(regular, 11)
}

func mustFace(f *sfnt.Font, size float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("new face size %.0f: %v", size, err))
	}
	return face
}
