package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the ebitenui overlay toggled with Escape. It mutates the
// shared SettingsData directly; the settings system applies the values.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Callbacks
	OnDisable func() // permanently disarm the breach trigger
	OnClose   func() // also persists settings
	IsLocked  func() bool

	// Widget references for updates
	volumeLabel      *widget.Label
	muteButton       *widget.Button
	fullscreenButton *widget.Button
	resolutionButton *widget.Button
	disableButton    *widget.Button

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewSettingsUI creates the settings overlay
func NewSettingsUI(settings *components.SettingsData, onDisable, onClose func(), isLocked func() bool) *SettingsUI {
	sui := &SettingsUI{
		Settings:  settings,
		OnDisable: onDisable,
		OnClose:   onClose,
		IsLocked:  isLocked,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root fills the screen; the panel floats centered over the scene
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 20, 28, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	panel.AddChild(sui.buildVolumeRow())
	panel.AddChild(sui.buildToggleRow())
	panel.AddChild(sui.buildDangerRow())
	panel.AddChild(sui.buildCloseRow())

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildVolumeRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	downButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("-", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Settings.AlarmVolume = stepVolume(sui.Settings.AlarmVolume, -1)
			sui.UpdateUI()
		}),
	)
	container.AddChild(downButton)

	sui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeText(sui.Settings.AlarmVolume), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 210, 220, 255},
		}),
	)
	container.AddChild(sui.volumeLabel)

	upButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("+", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Settings.AlarmVolume = stepVolume(sui.Settings.AlarmVolume, +1)
			sui.UpdateUI()
		}),
	)
	container.AddChild(upButton)

	return container
}

func (sui *SettingsUI) buildToggleRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	sui.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(muteText(sui.Settings.Muted), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Settings.Muted = !sui.Settings.Muted
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.muteButton)

	sui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenText(sui.Settings.Fullscreen), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Settings.Fullscreen = !sui.Settings.Fullscreen
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.fullscreenButton)

	sui.resolutionButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(resolutionText(sui.Settings.ResolutionIndex), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Settings.ResolutionIndex = (sui.Settings.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.resolutionButton)

	return container
}

func (sui *SettingsUI) buildDangerRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
	)

	sui.disableButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 24)),
		widget.ButtonOpts.Image(sui.dangerButtonImage()),
		widget.ButtonOpts.Text("disable breach effect", &sui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 200, 200, 255},
			Hover:    color.RGBA{255, 230, 230, 255},
			Pressed:  color.RGBA{220, 160, 160, 255},
			Disabled: color.RGBA{120, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnDisable != nil {
				sui.OnDisable()
			}
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.disableButton)

	return container
}

func (sui *SettingsUI) buildCloseRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
	)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Close", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	container.AddChild(closeButton)

	return container
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) dangerButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{100, 40, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{140, 60, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{80, 30, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{50, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{220, 230, 255, 255},
		Pressed:  color.RGBA{180, 190, 220, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

// UpdateUI refreshes widget labels to reflect current settings state
func (sui *SettingsUI) UpdateUI() {
	if sui.volumeLabel != nil {
		sui.volumeLabel.Label = volumeText(sui.Settings.AlarmVolume)
	}
	if sui.muteButton != nil {
		if textWidget := sui.muteButton.Text(); textWidget != nil {
			textWidget.Label = muteText(sui.Settings.Muted)
		}
	}
	if sui.fullscreenButton != nil {
		if textWidget := sui.fullscreenButton.Text(); textWidget != nil {
			textWidget.Label = fullscreenText(sui.Settings.Fullscreen)
		}
	}
	if sui.resolutionButton != nil {
		if textWidget := sui.resolutionButton.Text(); textWidget != nil {
			textWidget.Label = resolutionText(sui.Settings.ResolutionIndex)
		}
		// Changing the window size is pointless in fullscreen
		sui.resolutionButton.GetWidget().Disabled = sui.Settings.Fullscreen
	}
	if sui.disableButton != nil && sui.IsLocked != nil {
		sui.disableButton.GetWidget().Disabled = sui.IsLocked()
		if textWidget := sui.disableButton.Text(); textWidget != nil {
			if sui.IsLocked() {
				textWidget.Label = "breach trigger locked"
			} else {
				textWidget.Label = "disable breach effect"
			}
		}
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

// Draw renders the settings overlay
func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}

func stepVolume(v float64, dir int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	// Find the nearest step, then move one in dir
	nearest := 0
	for i, s := range steps {
		if abs(s-v) < abs(steps[nearest]-v) {
			nearest = i
		}
	}
	next := nearest + dir
	if next < 0 {
		next = 0
	}
	if next >= len(steps) {
		next = len(steps) - 1
	}
	return steps[next]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func volumeText(v float64) string {
	return fmt.Sprintf("alarm volume %3.0f%%", v*100)
}

func muteText(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}

func fullscreenText(fullscreen bool) string {
	if fullscreen {
		return "Fullscreen: on"
	}
	return "Fullscreen: off"
}

func resolutionText(index int) string {
	return cfg.SettingsMenu.Resolutions[index].Label
}
