package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

var converter = New()

func ToHTML(source string) (template.HTML, error) {
	var buff bytes.Buffer

	if err := converter.Convert([]byte(source), &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}
