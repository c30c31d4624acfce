package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string    { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }
func (s stubFrontend) Run(context.Context, loop.Options, core.RuntimeConfig) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Frontend { return stubFrontend{"test-b"} })
	Register("test-a", func() Frontend { return stubFrontend{"test-a"} })

	if !Exists("test-a") {
		t.Error("test-a should exist")
	}
	if Exists("test-missing") {
		t.Error("test-missing should not exist")
	}

	fe, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fe.ID() != "test-a" {
		t.Errorf("ID() = %q, expected %q", fe.ID(), "test-a")
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" || ids[1] != "test-b" {
		t.Errorf("List() order = %v, expected [test-a test-b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return stubFrontend{"test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("test-dup", func() Frontend { return stubFrontend{"test-dup"} })
}
