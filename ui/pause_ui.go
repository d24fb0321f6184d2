package ui

import (
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseUI is the menu shown while the simulation is paused. Its toggles
// edit the Settings component directly; UpdateSettings applies and saves
// them on the next tick.
type PauseUI struct {
	UI       *ebitenui.UI
	Settings func() *components.SettingsData

	OnResume func()
	OnReset  func()
	OnQuit   func()

	fullscreenButton *widget.Button
	debugButton      *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(settings func() *components.SettingsData, onResume, onReset, onQuit func()) *PauseUI {
	pui := &PauseUI{
		Settings:   settings,
		OnResume:   onResume,
		OnReset:    onReset,
		OnQuit:     onQuit,
		titleFace:  fonts.MenuTitle.Text(),
		normalFace: fonts.Menu.Text(),
	}
	pui.buildUI()
	return pui
}

func (pui *PauseUI) buildUI() {
	// Transparent root so the dimmed level shows around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.Text,
		}),
	))

	panel.AddChild(pui.newButton("Resume", pui.OnResume))

	pui.fullscreenButton = pui.newButton(ToggleLabel("Fullscreen", pui.Settings().Fullscreen), func() {
		pui.Settings().ToggleFullscreen()
		pui.UpdateUI()
	})
	panel.AddChild(pui.fullscreenButton)

	pui.debugButton = pui.newButton(ToggleLabel("Debug overlay", pui.Settings().Debug), func() {
		pui.Settings().ToggleDebug()
		pui.UpdateUI()
	})
	panel.AddChild(pui.debugButton)

	panel.AddChild(pui.newButton("Reset", pui.OnReset))
	panel.AddChild(pui.newButton("Quit", pui.OnQuit))

	rootContainer.AddChild(panel)
	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.Text,
			Hover:   cfg.Menu.TextHover,
			Pressed: cfg.Menu.Text,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// UpdateUI refreshes the toggle labels from the Settings component, which
// the keyboard shortcuts also change.
func (pui *PauseUI) UpdateUI() {
	if textWidget := pui.fullscreenButton.Text(); textWidget != nil {
		textWidget.Label = ToggleLabel("Fullscreen", pui.Settings().Fullscreen)
	}
	if textWidget := pui.debugButton.Text(); textWidget != nil {
		textWidget.Label = ToggleLabel("Debug overlay", pui.Settings().Debug)
	}
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
	pui.UpdateUI()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
	}
}

// ToggleLabel renders a setting name with its state, e.g. "Fullscreen: On".
func ToggleLabel(name string, on bool) string {
	if on {
		return name + ": On"
	}
	return name + ": Off"
}
