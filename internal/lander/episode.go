package lander

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// Snapshot is a read-only copy of an episode after a tick.
// Terrain is shared but immutable.
type Snapshot struct {
	EpisodeID uuid.UUID   `yaml:"episode_id"`
	Tick      int         `yaml:"tick"`
	Elapsed   float64     `yaml:"elapsed"` // Sum of normalized deltas
	Width     float64     `yaml:"width"`
	Height    float64     `yaml:"height"`
	Lander    State       `yaml:"lander"`
	Pad       LandingZone `yaml:"pad"`
	Terrain   Terrain     `yaml:"-"`
}

// Observer is notified once when an episode reaches a terminal status.
type Observer interface {
	OnTerminal(snap Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(snap Snapshot)

// OnTerminal calls f(snap).
func (f ObserverFunc) OnTerminal(snap Snapshot) {
	f(snap)
}

// InputSource supplies the control state before each tick.
type InputSource interface {
	Next(snap Snapshot) core.InputState
}

// InputFunc adapts a function to the InputSource interface.
type InputFunc func(snap Snapshot) core.InputState

// Next calls f(snap).
func (f InputFunc) Next(snap Snapshot) core.InputState {
	return f(snap)
}

// Episode owns one play-through: a terrain, a pad and a lander.
// It is the only writer of its state and is not safe for concurrent use.
type Episode struct {
	id        uuid.UUID
	cfg       config.LanderConfig
	width     float64
	height    float64
	terrain   Terrain
	pad       LandingZone
	state     State
	stepper   Stepper
	resolver  Resolver
	ticks     int
	elapsed   float64
	notified  bool
	observers []Observer
	logger    *log.Logger
}

type episodeOptions struct {
	cfg       config.LanderConfig
	seed      int64
	rng       *rand.Rand
	logger    *log.Logger
	observers []Observer
}

// Option configures a new Episode.
type Option func(*episodeOptions)

// WithConfig overrides the default simulation constants.
func WithConfig(cfg config.LanderConfig) Option {
	return func(o *episodeOptions) { o.cfg = cfg }
}

// WithSeed seeds terrain generation. Ignored when WithRand is given.
func WithSeed(seed int64) Option {
	return func(o *episodeOptions) { o.seed = seed }
}

// WithRand supplies the random source used for terrain generation.
func WithRand(rng *rand.Rand) Option {
	return func(o *episodeOptions) { o.rng = rng }
}

// WithLogger sets the episode logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(o *episodeOptions) { o.logger = l }
}

// WithObserver registers an observer for the terminal status.
func WithObserver(obs Observer) Option {
	return func(o *episodeOptions) { o.observers = append(o.observers, obs) }
}

// NewEpisode generates fresh terrain and a fresh lander for a width x height field.
func NewEpisode(width, height float64, opts ...Option) (*Episode, error) {
	o := episodeOptions{
		cfg:  config.DefaultLanderConfig(),
		seed: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("lander: cannot start episode: %w", err)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	terrain, pad, err := GenerateTerrain(width, height, o.rng, o.cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("lander: cannot start episode: %w", err)
	}

	id := uuid.New()
	e := &Episode{
		id:        id,
		cfg:       o.cfg,
		width:     width,
		height:    height,
		terrain:   terrain,
		pad:       pad,
		state:     NewState(width, o.cfg.Body),
		stepper:   NewStepper(o.cfg.Physics, width),
		resolver:  NewResolver(o.cfg.Landing),
		observers: o.observers,
		logger:    o.logger.With("episode", id.String()[:8]),
	}

	e.logger.Debug("episode started",
		"width", width,
		"height", height,
		"pad_x", pad.X,
		"pad_width", pad.Width,
		"terrain", fmt.Sprintf("%016x", terrain.Fingerprint()),
	)
	return e, nil
}

// ID returns the episode's unique identifier.
func (e *Episode) ID() uuid.UUID {
	return e.id
}

// Status returns the current flight status.
func (e *Episode) Status() Status {
	return e.state.Status
}

// Terrain returns the episode's terrain.
func (e *Episode) Terrain() Terrain {
	return e.terrain
}

// Pad returns the episode's landing zone.
func (e *Episode) Pad() LandingZone {
	return e.pad
}

// Config returns the constants the episode runs with.
func (e *Episode) Config() config.LanderConfig {
	return e.cfg
}

// Snapshot returns a copy of the current episode state.
func (e *Episode) Snapshot() Snapshot {
	return Snapshot{
		EpisodeID: e.id,
		Tick:      e.ticks,
		Elapsed:   e.elapsed,
		Width:     e.width,
		Height:    e.height,
		Lander:    e.state,
		Pad:       e.pad,
		Terrain:   e.terrain,
	}
}

// Tick advances the episode by one step: physics, then collision.
// delta is frame-normalized and clamped to the configured maximum.
//
// Ticking a finished episode does nothing and returns the final status.
func (e *Episode) Tick(in core.InputState, delta float64) Status {
	if e.state.Status.Terminal() {
		e.logger.Warn("tick after terminal status", "status", e.state.Status)
		return e.state.Status
	}

	delta = ClampDelta(delta, e.cfg.Episode.MaxDelta)
	e.stepper.Step(&e.state, in, delta)
	status := e.resolver.Resolve(&e.state, e.terrain, e.pad)
	e.ticks++
	e.elapsed += delta

	if e.logger.GetLevel() <= log.DebugLevel {
		e.logger.Debug("tick",
			"n", e.ticks,
			"x", e.state.X,
			"y", e.state.Y,
			"vx", e.state.VelocityX,
			"vy", e.state.VelocityY,
			"fuel", e.state.Fuel,
			"coast", in.Idle(),
		)
	}

	if status.Terminal() {
		e.finish()
	}
	return status
}

// TickElapsed converts wall-clock time to a normalized delta and ticks.
func (e *Episode) TickElapsed(in core.InputState, elapsed time.Duration) Status {
	frame := time.Duration(e.cfg.Episode.FrameMillis * float64(time.Millisecond))
	return e.Tick(in, NormalizeDelta(elapsed, frame))
}

// Run ticks with a fixed delta, polling src before every tick, until the
// episode ends or maxTicks is reached (0 means no limit).
func (e *Episode) Run(src InputSource, delta float64, maxTicks int) Status {
	for !e.state.Status.Terminal() {
		if maxTicks > 0 && e.ticks >= maxTicks {
			e.logger.Debug("tick limit reached", "ticks", e.ticks)
			break
		}
		e.Tick(src.Next(e.Snapshot()), delta)
	}
	return e.state.Status
}

// finish notifies observers of the terminal status exactly once.
func (e *Episode) finish() {
	if e.notified {
		return
	}
	e.notified = true

	e.logger.Info("episode finished",
		"status", e.state.Status,
		"ticks", e.ticks,
		"speed", fmt.Sprintf("%.3f", e.state.Speed()),
		"tilt_deg", fmt.Sprintf("%.2f", e.state.TiltDeg()),
		"fuel", fmt.Sprintf("%.1f", e.state.Fuel),
	)

	snap := e.Snapshot()
	for _, obs := range e.observers {
		obs.OnTerminal(snap)
	}
}
