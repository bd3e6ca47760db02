package service

import (
	"strings"
	"unicode/utf8"
)

const MaxTitleLength = 100

const (
	messageRequired   = "This field is required."
	messageShortTitle = "Please choose a short title."
)

type TodoInput struct {
	Title string
	Memo  string
}

// Normalize returns a copy of the input with the title trimmed. The memo is
// Markdown and kept verbatim, leading indentation included.
func (i TodoInput) Normalize() TodoInput {
	return TodoInput{
		Title: strings.TrimSpace(i.Title),
		Memo:  i.Memo,
	}
}

func (i TodoInput) Validate() error {
	normalized := i.Normalize()

	verr := &ValidationError{}

	switch {
	case normalized.Title == "":
		verr.Add(FieldTitle, messageRequired)
	case utf8.RuneCountInString(normalized.Title) > MaxTitleLength:
		verr.Add(FieldTitle, messageShortTitle)
	}

	return verr.Err()
}
