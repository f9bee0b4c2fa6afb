package source

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "", expected: Plain},
		{input: "plain", expected: Plain},
		{input: "TXT", expected: Plain},
		{input: " markdown ", expected: Markdown},
		{input: "md", expected: Markdown},
		{input: "html", expected: HTML},
		{input: "htm", expected: HTML},
		{input: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"notes.txt":        Plain,
		"README.md":        Markdown,
		"site/index.html":  HTML,
		"archive.tar.gz":   Plain,
		"Makefile":         Plain,
		"/tmp/page.HTM":    HTML,
		"dir.with.dots/md": Plain,
	}
	for path, expected := range tests {
		if got := FormatForPath(path); got != expected {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, expected)
		}
	}
}

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "paragraphs do not run together",
			input:    "<p>one</p><p>two</p>",
			expected: "one\ntwo\n",
		},
		{
			name:     "headers",
			input:    "<h1>Title</h1><h3>Section</h3>",
			expected: "Title\nSection\n",
		},
		{
			name:     "list items",
			input:    "<ul><li>item1</li><li>item2</li></ul>",
			expected: "item1\nitem2\n\n",
		},
		{
			name:     "table cells",
			input:    "<table><tr><td>cell1</td><td>cell2</td></tr></table>",
			expected: "cell1 cell2 \n",
		},
		{
			name:     "br variants",
			input:    "a<br>b<br/>c<br />d",
			expected: "a\nb\nc\nd",
		},
		{
			name:     "entities",
			input:    "Tom &amp; Jerry &quot;quoted&quot;",
			expected: "Tom & Jerry \"quoted\"",
		},
		{
			name:     "escaped markup stays text",
			input:    "a &lt;b&gt; c",
			expected: "a <b> c",
		},
		{
			name:     "inline tags",
			input:    "<p><strong>bold</strong> and <a href=\"#\">link</a>.</p>",
			expected: "bold and link.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripFormatting(tt.input)
			if result != tt.expected {
				t.Errorf("stripFormatting(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "h1 header",
			input:        "# Title",
			wantContains: []string{"<h1", "Title", "</h1>"},
		},
		{
			name:         "bold text",
			input:        "**bold**",
			wantContains: []string{"<strong>", "bold", "</strong>"},
		},
		{
			name:         "link",
			input:        "[text](https://example.com)",
			wantContains: []string{"<a", "https://example.com", "text", "</a>"},
		},
		{
			name:         "unordered list",
			input:        "- item1\n- item2",
			wantContains: []string{"<ul>", "<li>", "item1", "item2", "</ul>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := markdownToHTML(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("markdownToHTML(%q) = %q, missing %q", tt.input, result, want)
				}
			}
		})
	}
}

func TestToText(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name        string
		format      Format
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "plain is unchanged",
			format:   Plain,
			input:    "**not markdown**",
			contains: []string{"**not markdown**"},
		},
		{
			name:        "markdown drops markup and link targets",
			format:      Markdown,
			input:       "# Hello\n\nSome **bold** [words](https://example.com/page).",
			contains:    []string{"Hello", "Some", "bold", "words"},
			notContains: []string{"**", "#", "https://example.com", "<"},
		},
		{
			name:        "html drops tags",
			format:      HTML,
			input:       "<html><body><h1>Hello</h1><p>Some <b>bold</b> <a href=\"https://example.com\">words</a></p></body></html>",
			contains:    []string{"Hello", "Some", "bold", "words"},
			notContains: []string{"<", "https://example.com", "**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToText(ctx, tt.format, tt.input)
			if err != nil {
				t.Fatalf("ToText unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("ToText() = %q, missing %q", result, want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(result, unwanted) {
					t.Errorf("ToText() = %q, should not contain %q", result, unwanted)
				}
			}
		})
	}
}

func TestToTextUnknownFormat(t *testing.T) {
	if _, err := ToText(context.Background(), Format("pdf"), "x"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ToText error = %v, want ErrUnknownFormat", err)
	}
}
