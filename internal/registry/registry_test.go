package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/core-defense/internal/core"
)

type fakeGame struct{ id, title string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return g.title }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegistry(t *testing.T) {
	r := New()
	r.Register("zeta", func() Game { return fakeGame{"zeta", "Zeta"} })
	r.Register("alpha", func() Game { return fakeGame{"alpha", "Alpha"} })

	list := r.List()
	if len(list) != 2 || list[0].ID != "alpha" || list[1].Title != "Zeta" {
		t.Errorf("List() = %+v", list)
	}
	if !r.Exists("alpha") || r.Exists("beta") {
		t.Error("Exists mismatch")
	}

	g, err := r.Create("zeta")
	if err != nil || g.ID() != "zeta" {
		t.Errorf("Create(zeta) = %v, %v", g, err)
	}
	if _, err := r.Create("beta"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(beta) error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	f := func() Game { return fakeGame{"x", "X"} }
	r.Register("x", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	r.Register("x", f)
}
