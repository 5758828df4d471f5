package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/panzoom"
)

// hudW and hudH fit three lines of the debug font.
const (
	hudW = 260
	hudH = 52
)

// formatHUD renders the overlay text for one frame.
func formatHUD(fps, tps float64, v *panzoom.Viewer, cursor panzoom.Vec2) string {
	w := v.ToWorld(cursor)
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nscale: %.3f (%.3f-%.0f)\ncursor: %.0f,%.0f  image: %.1f,%.1f",
		fps, tps,
		v.Scale(), v.MinScale(), v.MaxScale(),
		cursor.X, cursor.Y, w.X, w.Y,
	)
}

// drawHUD draws the overlay in screen space, unaffected by the view matrix.
func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.hudImg == nil {
		g.hudImg = ebiten.NewImage(hudW, hudH)
	}
	g.hudImg.Clear()
	// Semi-transparent background for readability
	g.hudImg.Fill(color.RGBA{0, 0, 0, 128})

	cursor := panzoom.Vec2{X: g.prev.mouseX, Y: g.prev.mouseY}
	ebitenutil.DebugPrintAt(g.hudImg, formatHUD(ebiten.ActualFPS(), ebiten.ActualTPS(), g.viewer, cursor), 4, 2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(g.hudImg, op)
}
