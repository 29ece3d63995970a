package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/wordcosmo/audio"
	"github.com/lixenwraith/wordcosmo/config"
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/engine"
	"github.com/lixenwraith/wordcosmo/input"
	"github.com/lixenwraith/wordcosmo/logging"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/render"
)

const helpLine = "Enter spawn  'sun' place sun  Tab focus  Up/Down mass  Esc quit"

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode, _ := cmd.Flags().GetString("profile")
	stopProfile, err := startProfile(mode)
	if err != nil {
		return err
	}
	defer stopProfile()

	log, logFile, err := logging.Setup(cfg.Debug, cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	player := audio.NewPlayer(cfg.AudioPlayerConfig(), log)
	if err := player.Start(); err != nil {
		log.Warn("audio start failed", "error", err)
	}
	defer player.Stop()

	world := engine.New(engine.WithSeed(cfg.Seed), engine.WithLogger(log))
	v := newViewer(screen, world, player, cfg, log)
	log.Info("viewer start", "seed", cfg.Seed, "render_hz", cfg.Viewer.RenderHz, "audio", player.Backend())
	return v.loop()
}

// viewer owns the world and every collaborator; all state is touched from the loop goroutine only
type viewer struct {
	screen  tcell.Screen
	world   *engine.World
	player  *audio.Player
	machine *input.Machine
	stepper *engine.Stepper
	log     *slog.Logger

	cam render.Camera
	fb  *render.FrameBuffer
	pal *render.Palette

	words   []engine.WordSnapshot
	effects []engine.Effect

	renderEvery time.Duration
	status      string
}

func newViewer(screen tcell.Screen, world *engine.World, player *audio.Player, cfg *config.Config, log *slog.Logger) *viewer {
	return &viewer{
		screen:      screen,
		world:       world,
		player:      player,
		machine:     input.NewMachine(cfg.Viewer.SpawnMass),
		stepper:     engine.NewStepper(parameter.SimStep, parameter.MaxStepsPerFrame),
		log:         log,
		cam:         render.NewCamera(),
		fb:          render.NewFrameBuffer(0, 0),
		pal:         render.PaletteFor(cfg.ColorMode, screen.Colors()),
		renderEvery: time.Second / time.Duration(cfg.Viewer.RenderHz),
	}
}

func (v *viewer) loop() error {
	events := make(chan tcell.Event, parameter.InputPollBudget)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(v.renderEvery)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if v.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			steps := v.stepper.Advance(now.Sub(last))
			last = now
			for range steps {
				v.world.Tick(parameter.DT)
				v.playCues(v.world.Stats())
			}
			v.draw()
		}
	}
}

// handleEvent applies one terminal event; returns true to quit
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		in := v.machine.HandleKey(ev)
		switch in.Type {
		case input.IntentQuit:
			return true
		case input.IntentSpawn:
			v.world.AddWord(in.Text, in.Mass, v.cam.Pos)
			v.status = fmt.Sprintf("spawned %q m%.0f", in.Text, in.Mass)
			v.log.Debug("spawn", "text", in.Text, "mass", in.Mass, "x", v.cam.Pos.X, "y", v.cam.Pos.Y)
		case input.IntentSun:
			v.world.SetSun(v.cam.Pos)
			v.player.Play(audio.CueSun)
			v.status = "sun placed"
		case input.IntentFocusNext:
			if c := v.machine.Focus().Component(); c != "" {
				v.status = "focus " + c
			} else {
				v.status = "nothing to focus"
			}
		}
	}
	return false
}

// playCues maps one tick's event counters onto sound cues
func (v *viewer) playCues(s engine.Stats) {
	if s.Merges > 0 {
		v.player.Play(audio.CueMerge)
	}
	if s.Splits > 0 {
		v.player.Play(audio.CueSplit)
	}
	if s.Absorbs > 0 {
		v.player.Play(audio.CueAbsorb)
	}
}

func (v *viewer) draw() {
	v.words = v.world.Snapshot(v.words)
	v.effects = v.world.EffectsSnapshot(v.effects)

	focus := v.machine.Focus()
	focus.Sync(v.words)
	if target, ok := focus.Target(); ok {
		v.cam.Follow(target, parameter.CameraFollowAlpha)
	}

	w, h := v.screen.Size()
	viewH := max(0, h-parameter.HeaderRows-parameter.FooterRows)
	v.fb.Resize(w, viewH)
	render.Draw(v.fb, v.cam, v.words, v.effects, focus.ID())
	render.Blit(v.screen, v.fb, v.pal, 0, parameter.HeaderRows)

	v.drawHeader(w)
	v.drawFooter(w, h)
	v.screen.Show()
}

func (v *viewer) drawHeader(w int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	lines := statsLines(v.world.Stats())

	audioState := "audio off"
	if v.player.IsEnabled() {
		audioState = "audio " + v.player.Backend()
	}
	focus := "focus -"
	if f := v.machine.Focus(); f.ID() != 0 {
		focus = fmt.Sprintf("focus %s #%d", f.Component(), f.ID())
	}
	lines = append(lines, fmt.Sprintf("%s  %s  cam %.0f,%.0f", audioState, focus, v.cam.Pos.X, v.cam.Pos.Y))

	for row := range parameter.HeaderRows {
		render.FillRow(v.screen, 0, row, w, style)
		if row < len(lines) {
			render.DrawText(v.screen, 0, row, w, style, lines[row])
		}
	}
}

func (v *viewer) drawFooter(w, h int) {
	top := h - parameter.FooterRows
	if top < parameter.HeaderRows {
		return
	}
	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	render.FillRow(v.screen, 0, top, w, promptStyle)
	x := render.DrawText(v.screen, 0, top, w, promptStyle, "> "+v.machine.Line()+"_")
	render.DrawText(v.screen, x+2, top, w, dimStyle, fmt.Sprintf("mass %.0f  %s", v.machine.SpawnMass(), v.status))

	render.FillRow(v.screen, 0, top+1, w, dimStyle)
	render.DrawText(v.screen, 0, top+1, w, dimStyle, helpLine)
}
