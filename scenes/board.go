package scenes

import (
	"sync"

	cfg "github.com/automoto/fingerspin/config"
	"github.com/automoto/fingerspin/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BoardScene runs the play surface where fingers land and a winner
// gets picked
type BoardScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewBoardScene creates a new board scene
func NewBoardScene(sc SceneChanger) *BoardScene {
	return &BoardScene{sceneChanger: sc}
}

func (bs *BoardScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BoardScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Board.Background)

	if bs.ecs == nil {
		return
	}

	bs.ecs.Draw(screen)
}

func (bs *BoardScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	bs.ecs.AddSystem(systems.UpdateAudio)
	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.UpdateBoard)
	bs.ecs.AddSystem(systems.NewUpdateHUD(bs.sceneChanger, func() interface{} {
		return NewHomeScene(bs.sceneChanger)
	}))
	bs.ecs.AddSystem(systems.UpdateSelection)
	bs.ecs.AddSystem(systems.UpdateContacts)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawBoard)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}
