package scenes

import (
	"os"
	"sync"

	cfg "github.com/automoto/fingerspin/config"
	"github.com/automoto/fingerspin/systems"
	"github.com/automoto/fingerspin/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// HomeScene displays the title screen using ebitenui
type HomeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	homeUI       *ui.HomeUI
	once         sync.Once
	shouldPlay   bool
	shouldExit   bool
}

// NewHomeScene creates a new home scene
func NewHomeScene(sc SceneChanger) *HomeScene {
	return &HomeScene{sceneChanger: sc}
}

func (hs *HomeScene) Update() {
	hs.once.Do(hs.configure)

	// Update ECS for audio
	hs.ecs.Update()

	// Update ebitenui
	hs.homeUI.Update()

	if hs.shouldPlay {
		hs.sceneChanger.ChangeScene(NewBoardScene(hs.sceneChanger))
		return
	}
	if hs.shouldExit {
		os.Exit(0)
	}
}

func (hs *HomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Home.Background)

	if hs.ecs == nil {
		return
	}

	hs.homeUI.UI.Draw(screen)
}

func (hs *HomeScene) configure() {
	hs.ecs = ecs.NewECS(donburi.NewWorld())

	hs.ecs.AddSystem(systems.UpdateAudio)

	hs.homeUI = ui.NewHomeUI(
		func() { hs.shouldPlay = true },
		func() { hs.shouldExit = true },
	)
}
