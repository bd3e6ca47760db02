package crypto

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestRandomBytes(t *testing.T) {
	first, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 32, len(first); e != g {
		t.Errorf("len(first): expected %d, got %d", e, g)
	}

	second, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if bytes.Equal(first, second) {
		t.Errorf("expected two different random sequences")
	}
}
