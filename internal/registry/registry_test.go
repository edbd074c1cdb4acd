package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

type stub struct{ id string }

func (s stub) ID() string { return s.id }
func (s stub) Title() string { return "Stub " + s.id }
func (stub) Tune(*config.LanderConfig) {}
func (stub) Ticks() int { return 10 }
func (stub) Setup(*sim.Simulation) {}
func (stub) Input(*sim.Simulation) core.InputFrame { return core.NewInputFrame() }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-test-b", func() Scenario { return stub{"zz-test-b"} })
	Register("zz-test-a", func() Scenario { return stub{"zz-test-a"} })

	if !Exists("zz-test-a") || Exists("zz-test-missing") {
		t.Error("Exists mismatch")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-test-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID || info.Ticks != 10 {
				t.Errorf("info %+v", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-test-a" || ids[1] != "zz-test-b" {
		t.Errorf("List() order = %v", ids)
	}

	s, err := Create("zz-test-b")
	if err != nil || s.ID() != "zz-test-b" {
		t.Errorf("Create() = %v, %v", s, err)
	}
	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Scenario { return stub{"zz-test-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-test-dup", func() Scenario { return stub{"zz-test-dup"} })
}
