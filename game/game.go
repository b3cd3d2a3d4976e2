// Package game owns the terminal, the world and its collaborators, and drives the frame loop
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/neon-strike/audio"
	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/input"
	"github.com/lixenwraith/neon-strike/render"
	"github.com/lixenwraith/neon-strike/store"
	"github.com/lixenwraith/neon-strike/systems"
	"github.com/lixenwraith/neon-strike/vmath"
)

// Config carries startup options
type Config struct {
	Seed     uint64
	DataPath string // Score store file; empty keeps scores in memory
	Muted    bool
	Audio    *audio.AudioConfig  // nil loads from environment
	Time     engine.TimeProvider // nil uses the monotonic clock
}

// Game wires the simulation to the terminal, audio and score store
type Game struct {
	screen   tcell.Screen
	world    *engine.World
	queue    *events.Queue
	router   *events.Router[*engine.World]
	clock    *engine.PausableClock
	tracker  *input.Tracker
	renderer *render.Renderer
	sound    *audio.SoundManager
	scores   *store.ScoreStore

	vp       core.Viewport
	lastTime time.Duration // Game time of the previous frame
	aim      vmath.Vec2
}

// New builds a game on an initialized screen
func New(screen tcell.Screen, cfg Config) (*Game, error) {
	if screen == nil {
		return nil, errors.New("game: nil screen")
	}

	scores, err := store.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}

	provider := cfg.Time
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}

	audioCfg := cfg.Audio
	if audioCfg == nil {
		audioCfg = audio.LoadAudioConfig()
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Audio is optional; the manager stays silent
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	sound.SetMuted(cfg.Muted)

	queue := events.NewQueue()
	g := &Game{
		screen:   screen,
		queue:    queue,
		router:   events.NewRouter[*engine.World](queue),
		clock:    engine.NewPausableClock(provider),
		tracker:  input.NewTracker(),
		renderer: render.NewRenderer(cfg.Seed),
		sound:    sound,
		scores:   scores,
	}

	g.vp = viewportOf(screen)
	width, height := g.vp.ArenaSize()
	g.world = engine.NewWorld(width, height, cfg.Seed, queue)
	g.world.HighScore = scores.HighScore()
	g.world.Phase.OnTransition(g.onPhase)

	g.router.Register(audio.NewCueHandler[*engine.World](sound))
	g.router.Register(store.NewRecorder[*engine.World](scores))
	g.router.Register(newEventLogger())

	log.Info().Int("cols", g.vp.Cols).Int("rows", g.vp.Rows).Uint64("seed", cfg.Seed).Str("scores", scores.Path()).Msg("game initialized")
	return g, nil
}

func viewportOf(screen tcell.Screen) core.Viewport {
	cols, rows := screen.Size()
	return core.Viewport{Cols: cols, Rows: rows}
}

// onPhase keeps the clock and held input in step with the phase machine
func (g *Game) onPhase(from, to engine.Phase) {
	log.Debug().Stringer("from", from).Stringer("to", to).Msg("phase transition")
	switch to {
	case engine.PhasePlaying:
		if from == engine.PhaseLevelUp {
			g.clock.Resume()
		} else {
			g.clock.Reset()
			g.lastTime = 0
		}
	case engine.PhaseLevelUp:
		g.clock.Pause()
		g.tracker.Release()
	case engine.PhaseGameOver, engine.PhaseStart:
		g.tracker.Release()
	}
}

// World exposes the simulation state
func (g *Game) World() *engine.World { return g.world }

// Scores exposes the score store
func (g *Game) Scores() *store.ScoreStore { return g.scores }

// Frame runs one update then draw: step the simulation, dispatch its events, render
func (g *Game) Frame() {
	now := g.clock.Elapsed()

	if g.world.Phase.Is(engine.PhasePlaying) {
		in := g.tracker.Controls(g.clock.RealTime(), g.vp, g.world.Player)
		g.aim = in.Aim
		systems.Step(g.world, in, now, now-g.lastTime)
	}
	g.lastTime = now

	if lost := g.world.LostEvents; lost > 0 {
		log.Warn().Int("lost", lost).Int64("frame", g.world.Frame).Uint64("total_dropped", g.queue.Dropped()).Msg("event queue overflow")
		g.world.LostEvents = 0
	}
	g.router.DispatchAll(g.world)

	g.renderer.Draw(g.screen, render.Scene{
		World:   g.world,
		Aim:     g.aim,
		History: g.scores.History(),
		Muted:   g.sound.IsMuted(),
	})
}

// HandleEvent applies one terminal event; returns false when the game should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	in := input.Translate(ev)
	w := g.world

	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentToggleMute:
		muted := g.sound.ToggleMute()
		log.Info().Bool("muted", muted).Msg("audio toggled")

	case input.IntentResize:
		g.resize()

	case input.IntentStart:
		g.start()

	case input.IntentMenu:
		if w.Phase.Is(engine.PhaseGameOver) {
			if err := w.Phase.Transition(engine.PhaseStart); err != nil {
				log.Error().Err(err).Msg("return to menu failed")
			}
		}

	case input.IntentClearHistory:
		if w.Phase.Is(engine.PhaseStart) {
			if err := g.scores.ClearHistory(); err != nil {
				log.Warn().Err(err).Msg("failed to clear history")
			}
		}

	case input.IntentChoose:
		if w.Phase.Is(engine.PhaseLevelUp) {
			if err := systems.ChooseUpgrade(w, in.Index); err != nil {
				log.Debug().Err(err).Int("index", in.Index).Msg("upgrade choice rejected")
			}
		}

	case input.IntentFire:
		// Space starts a session from the menus and fires in play
		if !g.start() {
			g.tracker.Apply(in, g.clock.RealTime())
		}

	case input.IntentMove, input.IntentPointer:
		g.tracker.Apply(in, g.clock.RealTime())
	}
	return true
}

// start begins a session when on START or GAMEOVER; reports whether one began
func (g *Game) start() bool {
	w := g.world
	if !w.Phase.Is(engine.PhaseStart) && !w.Phase.Is(engine.PhaseGameOver) {
		return false
	}
	if err := systems.Reset(w); err != nil {
		log.Error().Err(err).Msg("session start failed")
		return false
	}
	return true
}

// resize refits the arena to the terminal
func (g *Game) resize() {
	g.vp = viewportOf(g.screen)
	width, height := g.vp.ArenaSize()
	g.world.Resize(width, height)
	g.screen.Sync()
}

// Run drives the game until quit or ctx cancellation
// The event pump and the frame loop run under one errgroup; either ending stops both
func (g *Game) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 256)
	quit := make(chan struct{})

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(core.Guard(func() error {
		g.screen.ChannelEvents(evCh, quit)
		return nil
	}))
	grp.Go(core.Guard(func() error {
		defer close(quit)
		return g.loop(ctx, evCh)
	}))

	err := grp.Wait()
	g.Close()
	return err
}

func (g *Game) loop(ctx context.Context, evCh <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	g.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				log.Info().Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}

// Close stops audio and persists a high score reached in an unfinished session
func (g *Game) Close() {
	if err := g.scores.SetHighScore(g.world.HighScore); err != nil {
		log.Warn().Err(err).Msg("failed to save high score")
	}
	g.sound.Cleanup()
}
