package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	scoreFontSize  = 18
	bannerFontSize = 28
)

var (
	hudTextColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	bannerColor  = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	pausedColor  = color.RGBA{R: 180, G: 180, B: 255, A: 255}
)

// hud renders the score line, the detection banner and control notices.
// Faces come from the bundled Go font, so no asset files are needed.
type hud struct {
	scoreFace  font.Face
	bannerFace font.Face
}

type hudState struct {
	score    float64
	detected bool
	paused   bool
	width    float64 // viewport width, anchors the banner top-right
	note     string
}

func newHUD() *hud {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	scoreFace, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size: scoreFontSize, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	bannerFace, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size: bannerFontSize, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return &hud{scoreFace: scoreFace, bannerFace: bannerFace}
}

func (h *hud) draw(screen *ebiten.Image, st hudState) {
	text.Draw(screen, fmt.Sprintf("Score: %.0f", st.score), h.scoreFace, 16, 30, hudTextColor)

	if st.detected {
		banner := "Detected!"
		w := text.BoundString(h.bannerFace, banner).Dx()
		text.Draw(screen, banner, h.bannerFace, int(st.width)-w-20, 42, bannerColor)
	}

	if st.paused {
		text.Draw(screen, "Paused", h.scoreFace, 16, 56, pausedColor)
	}

	if st.note != "" {
		ebitenutil.DebugPrintAt(screen, st.note, 16, 66)
	}
	ebitenutil.DebugPrintAt(screen, "move: WASD/arrows/touch  P pause  R restart  C copy report", 16, screen.Bounds().Dy()-18)
}
