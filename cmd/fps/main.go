package main

import (
	"flag"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/character/launch"
	"github.com/Carmen-Shannon/oxy-fps/engine/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
)

// Smallest window the arena view stays usable at.
const minWindowWidth, minWindowHeight = 640, 360

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (falls back to $OXY_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(common.Coalesce(*configPath, os.Getenv("OXY_CONFIG")))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		log.Fatalf("bindings: %v", err)
	}

	// ── Window + Renderer ───────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithSizeLimits(minWindowWidth, minWindowHeight, 0, 0),
		window.WithCursorCaptured(cfg.Window.CaptureCursor),
	)
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.ParsePresentMode(cfg.Engine.PresentMode)),
		renderer.WithForceSoftwareRenderer(cfg.Engine.SoftwareRenderer),
	)

	// ── World + Player body ─────────────────────────────────────────
	world := physics.NewWorld()
	spawn := buildArena(world)
	body := physics.NewCapsule(world,
		physics.WithObject(game_object.NewGameObject(
			game_object.WithPosition(spawn[0], spawn[1], spawn[2]),
		)),
	)

	// ── Camera rides the capsule's eye point ────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(60),
		camera.WithViewport(win.Width(), win.Height()),
		camera.WithNear(0.05),
		camera.WithFar(500),
		camera.WithController(body),
	)

	// ── Input ───────────────────────────────────────────────────────
	inputOpts := []input.ManagerBuilderOption{
		input.WithBindings(bindings),
		input.WithMouseScale(cfg.Input.MouseScale),
	}
	if cfg.Window.CaptureCursor {
		inputOpts = append(inputOpts, input.WithCursorLocked(func() (int, int) {
			return win.Width(), win.Height()
		}))
	}
	in := input.NewManager(win, inputOpts...)

	// ── Player ──────────────────────────────────────────────────────
	launcher, err := launch.NewLauncher(
		launch.WithConfig(cfg.Launch),
		launch.WithGroundMask(physics.LayerGround.Mask()),
		launch.WithDebug(cfg.Engine.LaunchDebug),
	)
	if err != nil {
		log.Fatalf("launcher: %v", err)
	}
	player, err := character.NewController(body, cam, world, in,
		character.WithID("player"),
		character.WithConfig(cfg.Character),
		character.WithExtension(launcher),
	)
	if err != nil {
		log.Fatalf("player: %v", err)
	}

	// ── Scene + Engine ──────────────────────────────────────────────
	sc := scene.NewScene("arena", world, cam,
		scene.WithControllers(player),
		scene.WithTickWorkers(cfg.Engine.TickWorkers),
	)
	if err := sc.SetActive(true); err != nil {
		log.Fatalf("scene: %v", err)
	}
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithSummary(func() string {
			return player.State().String()
		}))),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithClearColor(func() renderer.Color {
			return clearColor(player.State())
		}),
		engine.WithScene(0, sc),
	)

	log.Printf("[Main] %s: %d colliders, spawn %v, tick %.0f Hz", cfg.Window.Title, len(world.Colliders()), spawn, cfg.Engine.TickRate)
	eng.Run()

	if err := win.Close(); err != nil {
		log.Printf("[Main] close window: %v", err)
	}
}
