// Package source turns raw documents of a known format into plain text
// that can be fed to a bag.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	Plain    Format = "plain"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

// AllFormats lists every supported input format.
var AllFormats = []Format{Plain, Markdown, HTML}

var ErrUnknownFormat = errors.New("unknown input format")

// ParseFormat parses a format name. The empty string means Plain.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", Plain, "text", "txt":
		return Plain, nil
	case Markdown, "md":
		return Markdown, nil
	case HTML, "htm":
		return HTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath guesses the format of a file from its extension.
func FormatForPath(path string) Format {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return Plain
	}
	f, err := ParseFormat(path[i+1:])
	if err != nil {
		return Plain
	}
	return f
}

// ToText converts input of the given format to plain text.
func ToText(ctx context.Context, format Format, input string) (string, error) {
	switch format {
	case Plain:
		return input, nil
	case Markdown:
		return stripFormatting(markdownToHTML(input)), nil
	case HTML:
		md := htmlToMarkdown(ctx, input)
		return stripFormatting(markdownToHTML(md)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
