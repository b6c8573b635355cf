package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
)

type stubPilot struct{ name string }

func (p stubPilot) Name() string                         { return p.name }
func (p stubPilot) Next(lander.Snapshot) core.InputState { return core.InputState{Thrust: true} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", "Stub", func(Args) (Pilot, error) {
		return stubPilot{name: "test-stub"}, nil
	})

	if !Exists("test-stub") {
		t.Fatal("expected test-stub to be registered")
	}

	p, err := Create("test-stub", Args{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "test-stub" {
		t.Errorf("Name() = %q, want test-stub", p.Name())
	}
	if !p.Next(lander.Snapshot{}).Thrust {
		t.Error("stub pilot should thrust")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, want Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include test-stub")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", func(Args) (Pilot, error) { return stubPilot{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", "Dup", func(Args) (Pilot, error) { return stubPilot{}, nil })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-pilot", Args{})
	if !errors.Is(err, ErrUnknownPilot) {
		t.Errorf("err = %v, want ErrUnknownPilot", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-broken", "Broken", func(Args) (Pilot, error) { return nil, boom })

	_, err := Create("test-broken", Args{})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("test-zz", "Z", func(Args) (Pilot, error) { return stubPilot{}, nil })
	Register("test-aa", "A", func(Args) (Pilot, error) { return stubPilot{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
