package ecs

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/application/system"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestRig(t *testing.T, backend string) *system.Rig {
	t.Helper()
	cfg := &config.StageConfig{
		ID:       "ecs",
		TileSize: 1,
		Backend:  backend,
		Body:     config.BodyConfig{Width: 0.8, Height: 1.6, Mass: 1},
		Layers: config.LayersConfig{
			Collision: []string{
				"#..................#",
				"#..................#",
				"#..................#",
				"####################",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
		},
	}
	rig, err := system.NewRig(cfg, config.DefaultTuning().Probe)
	require.NoError(t, err)
	return rig
}

func spawn(t *testing.T, rig *system.Rig, feet mgl64.Vec3) (*system.Character, system.Body) {
	t.Helper()
	body := rig.Spawn(feet)
	c, err := system.NewCharacter(config.DefaultTuning(), body, body, nil)
	require.NoError(t, err)
	return c, body
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(nil)

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Mover)
	assert.NotNil(t, w.Input)
	assert.NotNil(t, w.IsPlayer)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld(nil)

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)

	c, body := spawn(t, rig, mgl64.Vec3{2.5, 1, 0})
	id1 := w.CreatePlayer(c, body)
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)

	c, body := spawn(t, rig, mgl64.Vec3{2.5, 1, 0})
	id := w.CreatePlayer(c, body)
	require.True(t, w.Exists(id))
	assert.Equal(t, id, w.PlayerID)

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	assert.NotContains(t, w.Input, id)
	assert.NotContains(t, w.IsPlayer, id)
	assert.Equal(t, EntityID(0), w.PlayerID)
	_, ok := w.Position(id)
	assert.False(t, ok)
}

func TestAI_Input(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		ai := &AI{Type: AIIdle}
		assert.Equal(t, system.InputState{}, ai.Input(3, true))
	})

	t.Run("patrol turns at bounds", func(t *testing.T) {
		ai := &AI{Type: AIPatrol, PatrolStartX: 5, PatrolDistance: 2}

		in := ai.Input(5, true)
		assert.True(t, in.Right)
		assert.True(t, in.Walk)

		in = ai.Input(7, true)
		assert.True(t, in.Left)
		assert.Equal(t, -1.0, ai.PatrolDir)

		in = ai.Input(6, true)
		assert.True(t, in.Left)

		in = ai.Input(3, true)
		assert.True(t, in.Right)
		assert.False(t, in.JumpPressed)
	})

	t.Run("hop jumps only when grounded", func(t *testing.T) {
		ai := &AI{Type: AIHop, PatrolStartX: 5, PatrolDistance: 2, PatrolDir: 1}

		assert.True(t, ai.Input(5, true).JumpPressed)
		assert.False(t, ai.Input(5, false).JumpPressed)
	})
}

func TestWorld_StepMovesEveryEntity(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)
	w.SetWorkers(2)

	player := w.CreatePlayer(spawn(t, rig, mgl64.Vec3{2.5, 1, 0}))
	agents := make([]EntityID, 0, 4)
	for i := 0; i < 4; i++ {
		c, body := spawn(t, rig, mgl64.Vec3{5.5 + float64(i)*3, 1, 0})
		agents = append(agents, w.CreateAgent(c, body, AIPatrol, 1))
	}

	w.SetPlayerInput(system.InputState{Right: true})
	for i := 0; i < 30; i++ {
		reports, err := w.Step(context.Background(), testDT)
		require.NoError(t, err)
		require.Len(t, reports, 5)
		for j := 1; j < len(reports); j++ {
			assert.Less(t, reports[j-1].ID, reports[j].ID)
		}
	}

	pos, ok := w.Position(player)
	require.True(t, ok)
	assert.Greater(t, pos.X(), 2.5)

	for i, id := range agents {
		pos, _ := w.Position(id)
		assert.Greater(t, pos.X(), 5.5+float64(i)*3, "agent %d", id)
		assert.Equal(t, 1.0, pos.Y())
	}
}

func TestWorld_StepReportsEvents(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)
	id := w.CreatePlayer(spawn(t, rig, mgl64.Vec3{2.5, 1.5, 0}))

	landed := false
	for i := 0; i < 60 && !landed; i++ {
		reports, err := w.Step(context.Background(), testDT)
		require.NoError(t, err)
		for _, e := range reports[0].Report.Events {
			landed = landed || e.Kind == pipeline.EventLanded
		}
		assert.Equal(t, id, reports[0].ID)
	}
	assert.True(t, landed)
}

func TestWorld_StepConsumesPresses(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)
	id := w.CreatePlayer(spawn(t, rig, mgl64.Vec3{2.5, 1, 0}))

	w.SetPlayerInput(system.InputState{Right: true, Dash: true, JumpPressed: true})
	_, err := w.Step(context.Background(), testDT)
	require.NoError(t, err)

	assert.Equal(t, system.InputState{Right: true}, w.Input[id])
}

func TestWorld_StepCanceled(t *testing.T) {
	rig := createTestRig(t, "")
	w := NewWorld(rig)
	w.CreatePlayer(spawn(t, rig, mgl64.Vec3{2.5, 1, 0}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Step(ctx, testDT)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorld_StepsSharedPhysics(t *testing.T) {
	rig := createTestRig(t, system.BackendChipmunk)
	w := NewWorld(rig)

	a := w.CreatePlayer(spawn(t, rig, mgl64.Vec3{3.5, 2.5, 0}))
	c, body := spawn(t, rig, mgl64.Vec3{8.5, 2.5, 0})
	b := w.CreateAgent(c, body, AIIdle, 0)

	for i := 0; i < 120; i++ {
		_, err := w.Step(context.Background(), testDT)
		require.NoError(t, err)
	}

	for _, id := range []EntityID{a, b} {
		pos, _ := w.Position(id)
		assert.InDelta(t, 1.0, pos.Y(), 0.05)
		assert.True(t, w.Mover[id].Character.Pipeline.State().IsGrounded)
	}
}
