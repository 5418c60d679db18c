package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type playerFixture struct {
	world  *ecs.World
	system *PlayerControllerSystem
	player ecs.Entity
	body   *cp.Body
}

var testPlayerConfig = component.Player{
	MoveSpeed:    100,
	DashSpeed:    300,
	DashDuration: 0.2,
	DashCooldown: 0.3,
	MinY:         32,
}

func newPlayerFixture(t *testing.T, dt float64) *playerFixture {
	t.Helper()

	w := ecs.NewWorld()
	e := w.CreateEntity()
	body := newTestBody(0, 100)

	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		t.Fatalf("add player tag: %v", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, testPlayerConfig); err != nil {
		t.Fatalf("add player config: %v", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	if err := ecs.Add(w, e, component.DashComponent, component.Dash{Phase: component.DashReady}); err != nil {
		t.Fatalf("add dash: %v", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	sys := NewPlayerControllerSystem()
	sys.delta = func() float64 { return dt }

	return &playerFixture{world: w, system: sys, player: e, body: body}
}

func (f *playerFixture) setInput(t *testing.T, moveX, moveY float64, dashPressed bool) {
	t.Helper()
	if err := ecs.Add(f.world, f.player, component.InputComponent, component.Input{
		MoveX:       moveX,
		MoveY:       moveY,
		DashPressed: dashPressed,
	}); err != nil {
		t.Fatalf("set input: %v", err)
	}
}

func (f *playerFixture) dash(t *testing.T) component.Dash {
	t.Helper()
	d, ok := ecs.Get(f.world, f.player, component.DashComponent)
	if !ok {
		t.Fatalf("dash component missing")
	}
	return d
}

func TestPlayerMovementVelocity(t *testing.T) {
	f := newPlayerFixture(t, 0.1)

	f.setInput(t, 1, 0, false)
	f.system.Update(f.world)
	if vel := f.body.Velocity(); vel != (cp.Vector{X: testPlayerConfig.MoveSpeed}) {
		t.Fatalf("expected velocity (%v,0), got %v", testPlayerConfig.MoveSpeed, vel)
	}

	f.setInput(t, 0, 0, false)
	f.system.Update(f.world)
	if vel := f.body.Velocity(); vel != (cp.Vector{}) {
		t.Fatalf("expected zero velocity with no input, got %v", vel)
	}
}

func TestPlayerDashLifecycle(t *testing.T) {
	f := newPlayerFixture(t, 0.1)

	// Edge press with movement held starts the dash.
	f.setInput(t, 0, 1, true)
	f.system.Update(f.world)
	d := f.dash(t)
	if d.Phase != component.DashDashing {
		t.Fatalf("expected dashing after press, got %s", d.Phase)
	}
	if d.Timer != testPlayerConfig.DashDuration {
		t.Fatalf("expected dash timer %v, got %v", testPlayerConfig.DashDuration, d.Timer)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{Y: testPlayerConfig.DashSpeed}) {
		t.Fatalf("expected dash velocity (0,%v), got %v", testPlayerConfig.DashSpeed, vel)
	}

	// Movement input changes mid-dash but the locked direction wins.
	f.setInput(t, 1, 0, false)
	f.system.Update(f.world)
	d = f.dash(t)
	if d.Phase != component.DashDashing {
		t.Fatalf("expected dash still running, got %s", d.Phase)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{Y: testPlayerConfig.DashSpeed}) {
		t.Fatalf("expected locked dash velocity, got %v", vel)
	}

	// Duration elapses: cooldown starts, normal movement resumes.
	f.system.Update(f.world)
	d = f.dash(t)
	if d.Phase != component.DashCoolingDown {
		t.Fatalf("expected cooldown after dash ends, got %s", d.Phase)
	}
	if d.Timer != testPlayerConfig.DashCooldown {
		t.Fatalf("expected cooldown timer %v, got %v", testPlayerConfig.DashCooldown, d.Timer)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{X: testPlayerConfig.MoveSpeed}) {
		t.Fatalf("expected movement velocity after dash, got %v", vel)
	}

	// Presses during cooldown are dropped, never queued.
	f.setInput(t, 1, 0, true)
	f.system.Update(f.world)
	f.system.Update(f.world)
	if d = f.dash(t); d.Phase != component.DashCoolingDown {
		t.Fatalf("expected cooldown to keep running, got %s", d.Phase)
	}

	// Cooldown elapses back to ready.
	f.setInput(t, 1, 0, false)
	f.system.Update(f.world)
	if d = f.dash(t); d.Phase != component.DashReady {
		t.Fatalf("expected ready after cooldown, got %s", d.Phase)
	}
	if d.Timer != 0 {
		t.Fatalf("expected timer cleared when ready, got %v", d.Timer)
	}

	// A fresh edge press works again.
	f.setInput(t, -1, 0, true)
	f.system.Update(f.world)
	if d = f.dash(t); d.Phase != component.DashDashing {
		t.Fatalf("expected second dash to start, got %s", d.Phase)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{X: -testPlayerConfig.DashSpeed}) {
		t.Fatalf("expected dash velocity (-%v,0), got %v", testPlayerConfig.DashSpeed, vel)
	}
}

func TestPlayerDashRequiresDirection(t *testing.T) {
	f := newPlayerFixture(t, 0.1)

	f.setInput(t, 0, 0, true)
	f.system.Update(f.world)
	d := f.dash(t)
	if d.Phase != component.DashReady {
		t.Fatalf("expected stationary dash press dropped, got %s", d.Phase)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{}) {
		t.Fatalf("expected zero velocity, got %v", vel)
	}
}

func TestPlayerDashEndWithoutInputStops(t *testing.T) {
	f := newPlayerFixture(t, 0.1)

	f.setInput(t, 1, 0, true)
	f.system.Update(f.world)
	f.setInput(t, 0, 0, false)
	f.system.Update(f.world)
	f.system.Update(f.world) // duration elapses with no input held

	if d := f.dash(t); d.Phase != component.DashCoolingDown {
		t.Fatalf("expected cooldown, got %s", d.Phase)
	}
	if vel := f.body.Velocity(); vel != (cp.Vector{}) {
		t.Fatalf("expected velocity cleared at dash end, got %v", vel)
	}
}

func TestPlayerMissingBodyComponentInert(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
	_ = ecs.Add(w, e, component.PlayerComponent, testPlayerConfig)
	_ = ecs.Add(w, e, component.InputComponent, component.Input{MoveX: 1, DashPressed: true})
	_ = ecs.Add(w, e, component.DashComponent, component.Dash{Phase: component.DashReady})

	sys := NewPlayerControllerSystem()
	sys.delta = func() float64 { return 0.1 }

	sys.Update(w)
	sys.Update(w)
	d, _ := ecs.Get(w, e, component.DashComponent)
	if d.Phase != component.DashReady {
		t.Fatalf("expected inert controller to leave dash untouched, got %s", d.Phase)
	}
}

func TestPlayerWaitsForBodyConstruction(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
	_ = ecs.Add(w, e, component.PlayerComponent, testPlayerConfig)
	_ = ecs.Add(w, e, component.InputComponent, component.Input{MoveX: 1})
	_ = ecs.Add(w, e, component.DashComponent, component.Dash{Phase: component.DashReady})
	// Body slot exists but physics has not filled it yet.
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Width: 24, Height: 24, Mass: 1})

	sys := NewPlayerControllerSystem()
	sys.delta = func() float64 { return 0.1 }

	sys.Update(w)
	if sys.inert[e] {
		t.Fatalf("unbuilt body must not make the controller inert")
	}

	// The body shows up, as it does after the frame's physics pass.
	body := newTestBody(0, 100)
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body})
	sys.Update(w)
	if vel := body.Velocity(); vel != (cp.Vector{X: testPlayerConfig.MoveSpeed}) {
		t.Fatalf("expected movement once the body exists, got %v", vel)
	}
}

func TestBoundsClampsPlayerY(t *testing.T) {
	cases := []struct {
		name  string
		pos   cp.Vector
		want  cp.Vector
		moved bool
	}{
		{"below_bound", cp.Vector{X: 40, Y: 10}, cp.Vector{X: 40, Y: 32}, true},
		{"at_bound", cp.Vector{X: 40, Y: 32}, cp.Vector{X: 40, Y: 32}, false},
		{"above_bound", cp.Vector{X: 40, Y: 200}, cp.Vector{X: 40, Y: 200}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newPlayerFixture(t, 0.1)
			f.body.SetPosition(c.pos)
			f.body.SetVelocityVector(cp.Vector{X: 3, Y: -5})

			NewBoundsSystem().Update(f.world)

			if got := f.body.Position(); got != c.want {
				t.Fatalf("position %v, want %v", got, c.want)
			}
			// Correction never touches velocity.
			if vel := f.body.Velocity(); vel != (cp.Vector{X: 3, Y: -5}) {
				t.Fatalf("velocity changed by bounds pass: %v", vel)
			}
		})
	}
}
