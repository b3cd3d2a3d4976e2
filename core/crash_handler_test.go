package core

import (
	"errors"
	"testing"
)

func TestGuardPassesThroughResult(t *testing.T) {
	want := errors.New("loop failed")
	if err := Guard(func() error { return want })(); !errors.Is(err, want) {
		t.Fatalf("Guard() = %v, want %v", err, want)
	}
	if err := Guard(func() error { return nil })(); err != nil {
		t.Fatalf("Guard() = %v, want nil", err)
	}
}

func TestRegisterCrashScreenNil(t *testing.T) {
	RegisterCrashScreen(nil)
	if crashScreen.Load() != nil {
		t.Fatal("nil screen should clear the registration")
	}
}
