package ebitenhost

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

var GoMono = sync.OnceValue(func() *text.GoTextFaceSource {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		panic(err)
	}

	return font
})

// Fonts caches text faces by size.
type Fonts struct {
	faces map[float64]text.Face
}

func (f *Fonts) Face(size float64) text.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}

	if f.faces == nil {
		f.faces = map[float64]text.Face{}
	}

	face := &text.GoTextFace{
		Source: GoMono(),
		Size:   size,
	}

	f.faces[size] = face

	return face
}
