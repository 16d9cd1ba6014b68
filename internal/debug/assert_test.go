package debug

import (
	"errors"
	"testing"
)

func TestAssertPasses(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected no panic, got %v", r)
		}
	}()
	Assert(true, "never shown")
}

func TestAssertPanicsWhenEnabled(t *testing.T) {
	if !Enabled {
		t.Skip("contract checks disabled in release builds")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic value, got %T", r)
		}
		var ce *ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("expected *ContractError, got %T", err)
		}
		if ce.Message != "x must be 3, got 4" {
			t.Errorf("unexpected message %q", ce.Message)
		}
	}()
	Assert(false, "x must be %d, got %d", 3, 4)
}
