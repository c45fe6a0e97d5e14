package ecs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// UpdateAI writes the input of every AI driven entity
func UpdateAI(w *World) {
	for id, ai := range w.AI {
		m, ok := w.Mover[id]
		if !ok {
			continue
		}
		grounded := m.Character.Pipeline.State().IsGrounded
		w.Input[id] = ai.Input(m.Body.Position().X(), grounded)
	}
}

// Step ticks every mover once, then steps shared physics.
//
// Pipelines own their state, so movers tick concurrently. Event handlers
// subscribed on a pipeline run on that mover's goroutine. Reports are
// returned in entity order.
func (w *World) Step(ctx context.Context, deltaTime float64) ([]Report, error) {
	UpdateAI(w)

	ids := w.Entities()
	reports := make([]Report, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	if w.workers > 0 {
		g.SetLimit(w.workers)
	}
	for i, id := range ids {
		m := w.Mover[id]
		input := w.Input[id]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = Report{ID: id, Report: m.Character.Update(input, deltaTime)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if w.physics != nil {
		w.physics.Step(deltaTime)
	}

	// one-shot presses are consumed by the tick
	if in, ok := w.Input[w.PlayerID]; ok {
		in.JumpPressed = false
		in.Dash = false
		w.Input[w.PlayerID] = in
	}
	return reports, nil
}
