package registry

import (
	"testing"

	"github.com/vovakirdan/tui-lighting/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_test_b", func() Game { return &stubGame{id: "zz_test_b", title: "B"} })
	Register("zz_test_a", func() Game { return &stubGame{id: "zz_test_a", title: "A"} })

	if !Exists("zz_test_a") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "A")
	}

	// List is sorted by ID
	var ids []string
	for _, info := range List() {
		if info.ID == "zz_test_a" || info.ID == "zz_test_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "zz_test_a" || ids[1] != "zz_test_b" {
		t.Errorf("List() order = %v, expected [zz_test_a zz_test_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("zz_unknown"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateReturnsFreshInstance(t *testing.T) {
	Register("zz_fresh", func() Game { return &stubGame{id: "zz_fresh"} })

	a, err := Create("zz_fresh")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	b, _ := Create("zz_fresh")
	if a == b {
		t.Error("each Create() should return a new instance")
	}
}
