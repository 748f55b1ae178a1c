package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Board BoardConfig
var Selection SelectionConfig
var HUD HUDConfig
var Home HomeConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 200, B: 90, A: 255}
	LightGreen   = color.RGBA{R: 120, G: 255, B: 160, A: 255}
	Teal         = color.RGBA{R: 40, G: 170, B: 180, A: 255}
	NightBlue    = color.RGBA{R: 16, G: 20, B: 36, A: 255}
	SlateGray    = color.RGBA{R: 70, G: 76, B: 96, A: 255}
	DimGray      = color.RGBA{R: 44, G: 48, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// ContactColorID is a logical fill color for a contact circle.
// The selection sequencer recolors contacts by ID; the renderer resolves
// IDs through Board.Palette.
type ContactColorID int

const (
	ColorIdle ContactColorID = iota
	ColorHighlight
	ColorWinner
	ColorWinnerAlt
)

// BoardConfig contains play-surface and contact visual configuration
type BoardConfig struct {
	ContactRadius float64 // base circle radius in pixels
	BorderWidth   float32 // stroke width for idle contacts
	WinnerBorder  float32 // stroke width for winner-colored contacts

	// Orbiting decoration
	DotCount       int     // dots per contact, equally spaced
	DotRadius      float64 // radius of a single dot
	OrbitRadius    float64 // distance from contact center
	RotationPeriod int     // frames for one full revolution (5000ms at 60 TPS)
	PulseHalfCycle int     // frames for a dot fade half-cycle (600ms)
	PulseStagger   int     // extra half-cycle frames per dot index (100ms)

	Palette      map[ContactColorID]color.RGBA
	BorderColor  color.RGBA // idle border
	AccentBorder color.RGBA // border for winner-colored contacts
	Background   color.RGBA
}

// HomeConfig contains home screen configuration
type HomeConfig struct {
	Background color.RGBA
	Title      string
	Subtitle   string
}

func init() {
	C = &Config{
		Width:  640,
		Height: 960,
	}

	Board = BoardConfig{
		ContactRadius: 42,
		BorderWidth:   2,
		WinnerBorder:  5,

		DotCount:       8,
		DotRadius:      4,
		OrbitRadius:    58,
		RotationPeriod: 300,
		PulseHalfCycle: 36,
		PulseStagger:   6,

		Palette: map[ContactColorID]color.RGBA{
			ColorIdle:      Teal,
			ColorHighlight: Yellow,
			ColorWinner:    Green,
			ColorWinnerAlt: LightGreen,
		},
		BorderColor:  White,
		AccentBorder: Yellow,
		Background:   NightBlue,
	}

	Home = HomeConfig{
		Background: NightBlue,
		Title:      "FINGERSPIN",
		Subtitle:   "everyone puts a finger down",
	}
}
