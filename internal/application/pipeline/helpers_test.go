package pipeline

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// fakeModifier emits a fixed delta and records its calls into a shared log.
type fakeModifier struct {
	name   string
	phase  motion.Phase
	delta  motion.Delta
	log    *[]string
	resets int
	seen   []motion.Snapshot
	onTick func()
}

func newFake(name string, phase motion.Phase, log *[]string) *fakeModifier {
	return &fakeModifier{name: name, phase: phase, log: log}
}

func (m *fakeModifier) Phase() motion.Phase { return m.phase }

func (m *fakeModifier) ProcessMovement(s motion.Snapshot, _ float64) motion.Delta {
	if m.log != nil {
		*m.log = append(*m.log, m.name)
	}
	m.seen = append(m.seen, s)
	if m.onTick != nil {
		m.onTick()
	}
	return m.delta
}

func (m *fakeModifier) ResetModifier() { m.resets++ }

type stubGround struct {
	contact motion.GroundContact
	probes  int
}

func (g *stubGround) Probe() motion.GroundContact {
	g.probes++
	return g.contact
}

func (g *stubGround) setGrounded(hit bool) {
	g.contact = motion.GroundContact{Hit: hit, Normal: motion.Up}
}

type stubBody struct {
	applied   []mgl64.Vec3
	teleports []mgl64.Vec3
	calls     []string
}

func (b *stubBody) ApplyDisplacement(velocity mgl64.Vec3, _ float64) {
	b.applied = append(b.applied, velocity)
	b.calls = append(b.calls, "apply")
}

func (b *stubBody) Teleport(position mgl64.Vec3) {
	b.teleports = append(b.teleports, position)
	b.calls = append(b.calls, "teleport")
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}
