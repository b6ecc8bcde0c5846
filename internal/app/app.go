//go:build ebiten

package app

import (
	"context"
	"log/slog"
	"time"

	"galapagos/internal/biotope"
	"galapagos/internal/controller"
	"galapagos/internal/core"
	"galapagos/internal/render"
	"galapagos/internal/statlog"
	"galapagos/internal/strategy"
	"galapagos/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a biotope to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	bio     *biotope.Biotope
	ctrl    *controller.Controller
	logger  *slog.Logger
	pacer   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	view     *biotope.View
	display  biotope.Subscription
	csv      *statlog.CSV
	logging  biotope.Subscription
	paused   bool
	tickOnce bool
	selected string
}

// New seeds a biotope from cfg and wraps it in a Game.
func New(cfg *Config, logger *slog.Logger) (*Game, error) {
	bio := biotope.New(logger)
	g := &Game{
		cfg:     cfg,
		bio:     bio,
		ctrl:    controller.New(bio, logger),
		logger:  logger,
		pacer:   core.NewFixedStep(cfg.Interval),
		painter: render.NewGridPainter(cfg.Biotope.Width, cfg.Biotope.Height),
		overlay: ui.NewOverlay(core.Size{W: cfg.Biotope.Width, H: cfg.Biotope.Height}, cfg.Scale),
		hud:     ui.NewHUD(cfg.HUDWidth),
		paused:  true,
	}
	g.setDisplay(true)
	if err := bio.Seed(cfg.Biotope); err != nil {
		return nil, err
	}
	if kinds := bio.Config().Kinds; len(kinds) > 0 {
		g.selected = kinds[0]
	}
	return g, nil
}

// Reset reseeds the biotope with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.bio.Reseed(seed); err != nil {
		g.logger.Error("reseed failed", "seed", seed, "err", err)
	}
	g.tickOnce = false
}

// Close releases the statistics log, if one is open.
func (g *Game) Close() error {
	return g.setLogging(false)
}

func (g *Game) setDisplay(on bool) {
	if on == (g.display != 0) {
		return
	}
	if !on {
		g.bio.Unsubscribe(g.display)
		g.display = 0
		return
	}
	g.display = g.bio.Subscribe(func(v *biotope.View) {
		g.view = v
		g.painter.Update(v)
	})
	if g.bio.Seeded() {
		g.view = g.bio.View()
		g.painter.Update(g.view)
	}
}

func (g *Game) setLogging(on bool) error {
	if on == (g.csv != nil) {
		return nil
	}
	if !on {
		g.bio.Unsubscribe(g.logging)
		err := g.csv.Close()
		g.csv, g.logging = nil, 0
		g.logger.Info("statistics log closed", "path", g.cfg.CSVPath)
		return err
	}
	csv, err := statlog.CreateCSV(g.cfg.CSVPath, strategy.Names())
	if err != nil {
		return err
	}
	g.csv = csv
	g.logging = g.bio.Subscribe(csv.Observer())
	g.logger.Info("statistics log opened", "path", g.cfg.CSVPath)
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.Close(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if _, err := g.ctrl.RunRounds(context.Background(), g.cfg.Batch); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.bio.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := g.setLogging(g.csv == nil); err != nil {
			g.logger.Error("toggle statistics log", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.setDisplay(g.display == 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetInterval(stepInterval(g.pacer.Interval(), true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetInterval(stepInterval(g.pacer.Interval(), false))
	}
	if g.view != nil {
		for i, key := range digitKeys {
			if inpututil.IsKeyJustPressed(key) {
				if kind, ok := kindForDigit(i+1, g.view.Kinds()); ok {
					g.selected = kind
				}
			}
		}
	}

	g.overlay.Update()
	in := g.hud.Update(g.gridWidth(), g.view, g.status())
	if in.Select != "" {
		g.selected = in.Select
	}
	if in.Speed != 0 {
		g.pacer.SetInterval(stepInterval(g.pacer.Interval(), in.Speed > 0))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.selected != "" {
		if x, y, ok := g.overlay.CursorCell(); ok {
			if _, err := g.bio.PlaceKind(x, y, g.selected); err != nil {
				g.logger.Warn("pencil placement", "kind", g.selected, "err", err)
			}
		}
	}

	step := !g.paused && g.pacer.ShouldStep()
	if step || g.tickOnce {
		if err := g.bio.AdvanceRound(); err != nil {
			return err
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Paused:   g.paused,
		Logging:  g.csv != nil,
		Display:  g.display != 0,
		Interval: g.pacer.Interval(),
		Selected: g.selected,
	}
}

func (g *Game) gridWidth() int { return g.bio.Size().W * g.cfg.Scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cfg.Scale)
	g.overlay.Draw(screen, render.KindColor(g.selected))
	g.hud.Draw(screen, g.gridWidth(), g.bio.Size().H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.bio.Size()
	return s.W*g.cfg.Scale + g.cfg.HUDWidth, s.H * g.cfg.Scale
}
