package sandbox

import (
	"context"
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/application/system"
	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/ecs"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

// maxRecentEvents bounds the event log kept for the HUD
const maxRecentEvents = 8

// Options selects what a Session loads
type Options struct {
	Loader     *config.Loader
	TuningFile string
	StageName  string
	Agents     int // AI characters spawned next to the player
}

// Session is the simulation behind the sandbox: one stage, the player and
// optional AI agents, all ticked through an ecs.World. It has no ebiten
// dependency so it can run headless.
type Session struct {
	opts     Options
	tuning   *config.TuningConfig
	stageCfg *config.StageConfig
	rig      *system.Rig
	world    *ecs.World

	player     *system.Character
	playerID   ecs.EntityID
	characters []*system.Character
	spawns     map[ecs.EntityID]mgl64.Vec3

	recent []pipeline.Event
	tick   int
}

// NewSession loads tuning and stage and spawns every character.
func NewSession(opts Options) (*Session, error) {
	if opts.Loader == nil {
		return nil, pipeline.NewMissingCollaboratorError("Session", "a config loader")
	}

	cfg, err := opts.Loader.LoadAll(opts.TuningFile, opts.StageName)
	if err != nil {
		return nil, err
	}

	rig, err := system.NewRig(cfg.Stage, cfg.Tuning.Probe)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:     opts,
		tuning:   cfg.Tuning,
		stageCfg: cfg.Stage,
		rig:      rig,
		world:    ecs.NewWorld(rig),
		spawns:   make(map[ecs.EntityID]mgl64.Vec3),
	}

	spawn := rig.Stage.Spawn
	player, body, err := s.spawn(spawn, "player")
	if err != nil {
		return nil, err
	}
	s.player = player
	s.playerID = s.world.CreatePlayer(player, body)
	s.spawns[s.playerID] = spawn

	for i := 0; i < opts.Agents; i++ {
		feet := spawn.Add(mgl64.Vec3{float64(i+1) * 2 * rig.Stage.TileSize, 0, 0})
		c, body, err := s.spawn(feet, fmt.Sprintf("agent-%d", i+1))
		if err != nil {
			return nil, err
		}
		kind := ecs.AIPatrol
		if i%2 == 1 {
			kind = ecs.AIHop
		}
		id := s.world.CreateAgent(c, body, kind, 2*rig.Stage.TileSize)
		s.spawns[id] = feet
	}

	return s, nil
}

func (s *Session) spawn(feet mgl64.Vec3, id string) (*system.Character, system.Body, error) {
	body := s.rig.Spawn(feet)
	c, err := system.NewCharacter(s.tuning, body, body, s.opts.Loader, pipeline.WithID(id))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to spawn %s: %w", id, err)
	}
	s.characters = append(s.characters, c)
	return c, body, nil
}

// Step ticks every character once with input for the player.
func (s *Session) Step(ctx context.Context, input system.InputState, dt float64) ([]ecs.Report, error) {
	s.world.SetPlayerInput(input)
	reports, err := s.world.Step(ctx, dt)
	if err != nil {
		return nil, err
	}
	s.tick++

	for _, r := range reports {
		if r.ID != s.playerID {
			continue
		}
		for _, e := range r.Report.Events {
			s.recent = append(s.recent, e)
		}
	}
	if n := len(s.recent); n > maxRecentEvents {
		s.recent = s.recent[n-maxRecentEvents:]
	}
	return reports, nil
}

// Reload applies a changed file. Tuning and script changes reload the
// tuning into every character; other files are ignored.
func (s *Session) Reload(changed string) (bool, error) {
	name := filepath.Base(changed)
	isTuning := name == path.Base(s.opts.TuningFile)
	isScript := strings.EqualFold(filepath.Ext(changed), ".tengo")
	if !isTuning && !isScript {
		return false, nil
	}

	tuning, err := s.opts.Loader.LoadTuning(s.opts.TuningFile)
	if err != nil {
		return false, err
	}
	for _, c := range s.characters {
		if err := c.ApplyTuning(tuning); err != nil {
			return false, err
		}
	}
	s.tuning = tuning
	log.Printf("Reloaded tuning %s (%s changed)", s.opts.TuningFile, name)
	return true, nil
}

// Reset teleports every character back to its spawn and clears its motion.
func (s *Session) Reset() {
	for id, feet := range s.spawns {
		m, ok := s.world.Mover[id]
		if !ok {
			continue
		}
		m.Character.Dash.Stop()
		m.Character.Force.ResetModifier()
		m.Character.Directional.ResetModifier()
		m.Character.Pipeline.Teleport(feet, true)
		m.Character.Pipeline.ResetMovement()
	}
	s.recent = nil
}

// Player returns the player character
func (s *Session) Player() *system.Character { return s.player }

// PlayerPosition returns the player's feet
func (s *Session) PlayerPosition() mgl64.Vec3 {
	pos, _ := s.world.Position(s.playerID)
	return pos
}

// World returns the entity world
func (s *Session) World() *ecs.World { return s.world }

// Stage returns the loaded stage
func (s *Session) Stage() *entity.Stage { return s.rig.Stage }

// StageName returns the stage name from the options
func (s *Session) StageName() string { return s.opts.StageName }

// TuningFile returns the tuning file name from the options
func (s *Session) TuningFile() string { return s.opts.TuningFile }

// Tuning returns the tuning in use
func (s *Session) Tuning() *config.TuningConfig { return s.tuning }

// BodySize returns the size of every character body
func (s *Session) BodySize() (w, h float64) { return s.rig.BodySize() }

// Backend returns the physics backend name
func (s *Session) Backend() string { return s.rig.Kind() }

// RecentEvents returns the latest player events, oldest first
func (s *Session) RecentEvents() []pipeline.Event { return s.recent }

// Tick returns the number of completed steps
func (s *Session) Tick() int { return s.tick }
