package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/fingerspin/config"
	"github.com/automoto/fingerspin/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HomeUI holds the ebitenui interface for the home screen
type HomeUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()
	OnExit func()

	soundButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHomeUI creates the home screen UI
func NewHomeUI(onPlay, onExit func()) *HomeUI {
	hui := &HomeUI{
		OnPlay: onPlay,
		OnExit: onExit,
	}

	hui.loadFonts()
	hui.buildUI()

	return hui
}

func (hui *HomeUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	hui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   42,
	}
	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	hui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (hui *HomeUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Home.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Home.Title, &hui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Home.Subtitle, &hui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 180, 200, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 52)),
		widget.ButtonOpts.Image(hui.playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &hui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if hui.OnPlay != nil {
				hui.OnPlay()
			}
		}),
	)
	contentContainer.AddChild(playButton)

	hui.soundButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 40)),
		widget.ButtonOpts.Image(hui.buttonImage()),
		widget.ButtonOpts.Text(soundLabel(), &hui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 220, 255, 255},
			Pressed:  color.RGBA{160, 160, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.SetMuted(!systems.IsMuted())
			systems.SaveCurrentSettings()
			if textWidget := hui.soundButton.Text(); textWidget != nil {
				textWidget.Label = soundLabel()
			}
		}),
	)
	contentContainer.AddChild(hui.soundButton)

	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 40)),
		widget.ButtonOpts.Image(hui.buttonImage()),
		widget.ButtonOpts.Text("EXIT", &hui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 200, 200, 255},
			Pressed:  color.RGBA{200, 150, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if hui.OnExit != nil {
				hui.OnExit()
			}
		}),
	)
	contentContainer.AddChild(exitButton)

	rootContainer.AddChild(contentContainer)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func soundLabel() string {
	if systems.IsMuted() {
		return "SOUND: OFF"
	}
	return "SOUND: ON"
}

func (hui *HomeUI) buttonImage() *widget.ButtonImage {
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

func (hui *HomeUI) playButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update advances the ebitenui widget tree
func (hui *HomeUI) Update() {
	hui.UI.Update()
}
