package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"golang.org/x/image/colornames"
)

// drawWorld renders placeholder shapes for every entity. Rendering carries
// no game logic; it reads transforms and behavior state and nothing else.
func drawWorld(screen *ebiten.Image, w *ecs.World, debug bool) {
	screen.Fill(colornames.Darkslategray)

	for _, e := range w.Query(component.EnemyTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		st, _ := ecs.Get(w, e, component.EnemyStateComponent)
		cfg, hasCfg := ecs.Get(w, e, component.EnemyComponent)

		radius := float32(14)
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && b.Radius > 0 {
			radius = float32(b.Radius)
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), radius, stateColor(st.Current), true)

		if debug && hasCfg {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(cfg.ChaseDistance), 1, colornames.Orangered, true)
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(cfg.NoticeDistance), 1, colornames.Gold, true)
			if st.Current == component.StatePatrol {
				vector.StrokeCircle(screen, float32(st.PatrolCenter.X), float32(st.PatrolCenter.Y), float32(cfg.CircleRadius), 1, colornames.Lightgray, true)
			}
			ebitenutil.DebugPrintAt(screen, string(st.Current), int(t.X)-12, int(t.Y)-32)
		}
	}

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		width, height := 24.0, 24.0
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && b.Width > 0 && b.Height > 0 {
			width, height = b.Width, b.Height
		}
		clr := colornames.Skyblue
		if d, ok := ecs.Get(w, e, component.DashComponent); ok && d.Phase == component.DashDashing {
			clr = colornames.White
		}
		vector.DrawFilledRect(screen, float32(t.X-width/2), float32(t.Y-height/2), float32(width), float32(height), clr, true)

		if debug {
			if d, ok := ecs.Get(w, e, component.DashComponent); ok {
				ebitenutil.DebugPrintAt(screen, fmt.Sprintf("dash: %s", d.Phase), int(t.X)-24, int(t.Y)-32)
			}
		}
	}

	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), 8, 8)
	}
}

func stateColor(s component.StateID) color.RGBA {
	switch s {
	case component.StateChase:
		return colornames.Red
	case component.StateInvestigate:
		return colornames.Orange
	case component.StateSearch:
		return colornames.Yellow
	default:
		return colornames.Limegreen
	}
}
