// Package sandbox provides the interactive movement sandbox scene.
package sandbox

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/movekit/internal/application/replay"
	"github.com/younwookim/movekit/internal/application/scene"
	"github.com/younwookim/movekit/internal/application/state"
	"github.com/younwookim/movekit/internal/application/system"
	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{120, 100, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorAgent    = color.RGBA{200, 100, 100, 255}
	colorDashing  = colornames.White
	colorGround   = colornames.Khaki
	colorBG       = color.RGBA{26, 26, 46, 255}
)

// Sandbox is the interactive scene around a Session
type Sandbox struct {
	session     *Session
	state       state.SandboxState
	inputSystem *system.InputSystem
	screenW     int
	screenH     int
	scale       float64 // pixels per world unit

	// Hot reload
	watcher *config.Watcher

	// Input recording and playback
	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer
	replayFinal    *replay.Checkpoint
}

// New creates the scene. watcher may be nil to disable hot reload.
func New(session *Session, watcher *config.Watcher, screenW, screenH int, scale float64) *Sandbox {
	return &Sandbox{
		session:     session,
		state:       state.StatePlaying,
		inputSystem: system.NewInputSystem(),
		screenW:     screenW,
		screenH:     screenH,
		scale:       scale,
		watcher:     watcher,
	}
}

// Record enables input recording to filename
func (s *Sandbox) Record(filename string, dt float64) {
	s.recorder = replay.NewRecorder(s.session.StageName(), s.session.TuningFile(), dt)
	s.recordFilename = filename
	log.Printf("Recording enabled: %s", filename)
}

// Replay feeds recorded input instead of the keyboard
func (s *Sandbox) Replay(data *replay.ReplayData) {
	s.replayer = replay.NewReplayer(*data)
	s.replayFinal = data.Final
	s.state = state.StateReplaying
}

// State returns the current sandbox state
func (s *Sandbox) State() state.SandboxState {
	return s.state
}

// Update advances the sandbox (implements scene.Scene)
func (s *Sandbox) Update(dt float64) (scene.Scene, error) {
	s.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch s.state {
		case state.StatePlaying:
			s.state = state.StatePaused
		case state.StatePaused:
			s.state = state.StatePlaying
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.replayer == nil {
		s.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}

	switch s.state {
	case state.StatePlaying:
		return nil, s.step(s.inputSystem.GetInput(), dt)
	case state.StateReplaying:
		in, ok := s.replayer.GetInput()
		if !ok {
			s.finishReplay()
			return nil, nil
		}
		return nil, s.step(system.InputFromReplay(in), dt)
	}
	return nil, nil
}

func (s *Sandbox) step(input system.InputState, dt float64) error {
	if s.recorder != nil {
		s.recorder.RecordFrame(input.Replay())
	}
	_, err := s.session.Step(context.Background(), input, dt)
	return err
}

func (s *Sandbox) finishReplay() {
	s.state = state.StateFinished
	pos := s.session.PlayerPosition()
	if err := verifyCheckpoint(s.replayFinal, pos); err != nil {
		log.Printf("Replay finished: %v", err)
		return
	}
	log.Printf("Replay finished at %v (%d ticks)", pos, s.replayer.TotalFrames())
}

func (s *Sandbox) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if _, err := s.session.Reload(name); err != nil {
				log.Printf("Failed to reload %s: %v", name, err)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}

// saveRecording saves the current recording to file
func (s *Sandbox) saveRecording() {
	if s.recorder == nil {
		return
	}

	filename := s.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	pos := s.session.PlayerPosition()
	s.recorder.SetFinal(pos.X(), pos.Y(), pos.Z())
	if err := s.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d ticks)", filename, s.recorder.FrameCount())
	}
}

// OnEnter implements scene.Scene
func (s *Sandbox) OnEnter() {}

// OnExit saves any recording in progress
func (s *Sandbox) OnExit() {
	if s.recorder != nil && s.recorder.IsRecording() {
		s.saveRecording()
		s.recorder.Stop()
	}
}

// worldToScreen maps a y-up world point to y-down screen pixels
func (s *Sandbox) worldToScreen(x, y, camX, camY float64) (float64, float64) {
	return (x-camX)*s.scale + float64(s.screenW)/2, float64(s.screenH)/2 - (y-camY)*s.scale
}

// Draw renders the sandbox
func (s *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	player := s.session.PlayerPosition()
	camX, camY := player.X(), player.Y()

	s.drawTiles(screen, camX, camY)
	s.drawBodies(screen, camX, camY)
	s.drawUI(screen)

	if s.state == state.StatePaused {
		overlay := color.RGBA{0, 0, 0, 128}
		ebitenutil.DrawRect(screen, 0, 0, float64(s.screenW), float64(s.screenH), overlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", s.screenW/2-50, s.screenH/2-20)
	}
}

func (s *Sandbox) drawTiles(screen *ebiten.Image, camX, camY float64) {
	stage := s.session.Stage()
	size := stage.TileSize * s.scale

	for ty := 0; ty < stage.Height; ty++ {
		for tx := 0; tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, ty)
			if !tile.Solid {
				continue
			}
			r := stage.TileRect(tx, ty)
			x, y := s.worldToScreen(r.MinX, r.MaxY, camX, camY)
			if x+size < 0 || y+size < 0 || x > float64(s.screenW) || y > float64(s.screenH) {
				continue
			}

			c := colorWall
			if tile.Type == entity.TilePlatform {
				c = colorPlatform
			}
			ebitenutil.DrawRect(screen, x, y, size, size, c)
		}
	}
}

func (s *Sandbox) drawBodies(screen *ebiten.Image, camX, camY float64) {
	w, h := s.session.BodySize()
	world := s.session.World()

	for _, id := range world.Entities() {
		m := world.Mover[id]
		feet := m.Body.Position()
		x, y := s.worldToScreen(feet.X()-w/2, feet.Y()+h, camX, camY)

		c := colorAgent
		if id == world.PlayerID {
			c = colorPlayer
		}
		if m.Character.Dash.Active() {
			c = colorDashing
		}
		ebitenutil.DrawRect(screen, x, y, w*s.scale, h*s.scale, c)

		snap := m.Character.Pipeline.State()
		if snap.IsGrounded {
			gx, gy := s.worldToScreen(snap.GroundPoint.X(), snap.GroundPoint.Y(), camX, camY)
			ebitenutil.DrawLine(screen, gx-w*s.scale/2, gy, gx+w*s.scale/2, gy, colorGround)
		}
	}
}

func (s *Sandbox) drawUI(screen *ebiten.Image) {
	snap := s.session.Player().Pipeline.State()
	pos := s.session.PlayerPosition()

	text := fmt.Sprintf("%s | %s backend | tick %d\npos %.2f %.2f %.2f\nspeed %.2f  vy %.2f  grounded %v  settled %v",
		s.state, s.session.Backend(), s.session.Tick(),
		pos.X(), pos.Y(), pos.Z(),
		snap.PrevSpeed, snap.PrevVelocity.Y(), snap.IsGrounded, snap.Settled())
	for _, e := range s.session.RecentEvents() {
		text += fmt.Sprintf("\n%6d %s", e.Tick, e.Kind)
	}
	ebitenutil.DebugPrint(screen, text)

	help := "A/D: Move | W/S: Depth | Shift: Walk | Space: Jump | K: Dash | R: Reset | F5: Save | ESC: Pause | Q: Quit"
	ebitenutil.DebugPrintAt(screen, help, 4, s.screenH-16)
}
