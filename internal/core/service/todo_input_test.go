package service

import (
	"testing"
)

func TestTodoInputNormalize(t *testing.T) {
	input := TodoInput{
		Title: "  Write release notes \n",
		Memo:  "    go test ./...\n\nthen tag the release\n",
	}

	normalized := input.Normalize()

	if e, g := "Write release notes", normalized.Title; e != g {
		t.Errorf("normalized.Title: expected %q, got %q", e, g)
	}

	if e, g := input.Memo, normalized.Memo; e != g {
		t.Errorf("normalized.Memo: expected %q, got %q", e, g)
	}
}
