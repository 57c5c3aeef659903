package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sysbreach/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var debugColor = color.RGBA{255, 255, 0, 255}

// DrawDebug renders the sequencer state readout when enabled (F3). Drawn
// on the screen, not the frame, so it never gets displaced by the glitch.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	lines := []string{
		fmt.Sprintf("tps %0.1f fps %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if ctrl := controllerOf(e); ctrl != nil {
		g := ctrl.Glitch()
		lines = append(lines,
			fmt.Sprintf("state %s locked=%v", ctrl.State(), ctrl.Locked()),
			fmt.Sprintf("glitch heavy=%v offset=(%.0f,%.0f)", g.Heavy, g.OffsetX, g.OffsetY),
		)
		if rain := ctrl.Rain(); rain != nil {
			_, seq := ctrl.RainFrame()
			lines = append(lines, fmt.Sprintf("rain cols=%d seq=%d", rain.Columns(), seq))
		}
	}

	face := fonts.MonoSmall.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, debugColor)
	}
}
