package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// HookSystem runs optional per-enemy tengo scripts on state transitions.
// It drains the frame's transition events and calls the hook named by the
// enemy's prefab with the transition globals. Hooks are observational; they
// get no handle back into the world. A script that fails to load or run is
// reported once and disabled.
type HookSystem struct {
	compiled map[string]*tengo.Compiled
	broken   map[string]bool
}

func NewHookSystem() *HookSystem {
	return &HookSystem{
		compiled: make(map[string]*tengo.Compiled),
		broken:   make(map[string]bool),
	}
}

func (h *HookSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}

	hooks := make(map[int]string)
	for _, e := range w.Query(component.EnemyComponent.Kind()) {
		if cfg, ok := ecs.Get(w, e, component.EnemyComponent); ok && cfg.Hook != "" {
			hooks[e.ID] = cfg.Hook
		}
	}

	for _, evt := range events {
		if evt.Type != component.EnemyTransitionEvent {
			continue
		}
		tr, ok := evt.Data.(component.EnemyTransition)
		if !ok {
			continue
		}
		path, ok := hooks[tr.Entity]
		if !ok {
			continue
		}
		h.run(path, tr)
	}
}

// Invalidate drops a cached script so the next transition recompiles it.
// The game loop calls this when the prefab watcher reports a script change.
func (h *HookSystem) Invalidate(path string) {
	if h == nil {
		return
	}
	delete(h.compiled, path)
	delete(h.broken, path)
}

func (h *HookSystem) run(path string, tr component.EnemyTransition) {
	if h.broken[path] {
		return
	}

	compiled, ok := h.compiled[path]
	if !ok {
		var err error
		compiled, err = compileHook(path)
		if err != nil {
			log.Printf("hook %s: %v, hook disabled", path, err)
			h.broken[path] = true
			return
		}
		h.compiled[path] = compiled
	}

	_ = compiled.Set("from", string(tr.From))
	_ = compiled.Set("to", string(tr.To))
	_ = compiled.Set("trigger", string(tr.Trigger))
	_ = compiled.Set("distance", tr.Distance)
	if err := compiled.Run(); err != nil {
		log.Printf("hook %s: run: %v, hook disabled", path, err)
		h.broken[path] = true
	}
}

func compileHook(path string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "text"))
	_ = script.Add("from", "")
	_ = script.Add("to", "")
	_ = script.Add("trigger", "")
	_ = script.Add("distance", 0.0)
	return script.Compile()
}
