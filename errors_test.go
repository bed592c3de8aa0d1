package monty_test

import (
	"errors"
	"testing"

	"github.com/materialyzeai/monty"
)

func TestErrors_Sentinel(t *testing.T) {
	errs := []error{
		monty.ErrInvalidFormat,
		monty.ErrCodecUnavailable,
		monty.ErrJSONLines,
	}
	for _, e := range errs {
		if e == nil {
			t.Fatalf("nil sentinel error")
		}
	}
}

func TestErrors_Is(t *testing.T) {
	wrapped := monty.ErrInvalidFormat
	if !errors.Is(wrapped, monty.ErrInvalidFormat) {
		t.Fatal("expected ErrInvalidFormat")
	}
}
