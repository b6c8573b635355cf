package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
	"github.com/vovakirdan/lander/internal/logging"
	"github.com/vovakirdan/lander/internal/registry"
)

// session bundles what every subcommand needs.
type session struct {
	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
}

func defaultRuntime() core.RuntimeConfig {
	return core.DefaultConfig()
}

// newSession resolves global flags into a logger, constants and runtime config.
func newSession() (*session, error) {
	logger, err := logging.New(os.Stderr, flagLogLevel, "lander")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadLander(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := defaultRuntime()
	rt.Width = flagWidth
	rt.Height = flagHeight
	rt.Seed = flagSeed
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger.Debug("session ready",
		"seed", rt.Seed,
		"width", rt.Width,
		"height", rt.Height,
		"preset", preset,
		"gravity", cfg.Physics.Gravity,
	)
	return &session{cfg: cfg, runtime: rt, logger: logger}, nil
}

// episode starts a new episode with the session's constants.
func (s *session) episode(seed int64, opts ...lander.Option) (*lander.Episode, error) {
	opts = append([]lander.Option{
		lander.WithConfig(s.cfg),
		lander.WithSeed(seed),
		lander.WithLogger(s.logger),
	}, opts...)
	return lander.NewEpisode(s.runtime.Width, s.runtime.Height, opts...)
}

// pilot creates a registered pilot.
func (s *session) pilot(id, scriptPath string) (registry.Pilot, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown pilot %q (run 'lander pilots' to see available pilots)", id)
	}
	return registry.Create(id, registry.Args{ScriptPath: scriptPath, Config: s.cfg})
}
