// Package format is the pretty-printing collaborator for generated source
// text. Options default to the project-level style config merged with
// per-call overrides; the formatter itself only normalizes whitespace and
// line structure, it does not reflow code.
package format

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Options mirror the project style configuration. Zero values mean
// "inherit from the loaded defaults".
type Options struct {
	Parser        string `json:"parser,omitempty"`
	TabWidth      int    `json:"tabWidth,omitempty"`
	UseTabs       *bool  `json:"useTabs,omitempty"`
	EndOfLine     string `json:"endOfLine,omitempty"`
	MaxBlankLines int    `json:"maxBlankLines,omitempty"`
}

// Formatter formats generated source text. A formatting failure is fatal
// for the file being written; callers must not swallow it.
type Formatter struct {
	defaults Options
}

// DefaultConfigFile is the project-level style configuration consulted by New.
const DefaultConfigFile = ".mdigenrc.json"

// New loads the project style config from path. A missing file yields
// built-in defaults; a malformed file is an error.
func New(path string) (*Formatter, error) {
	opts := Options{
		Parser:        "typescript",
		TabWidth:      2,
		EndOfLine:     "lf",
		MaxBlankLines: 1,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Formatter{defaults: opts}, nil
		}
		return nil, fmt.Errorf("read format config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse format config %s: %w", path, err)
	}
	return &Formatter{defaults: opts}, nil
}

// Format normalizes source under the merged options: line endings, trailing
// whitespace, blank-line runs, and a single trailing newline. Deterministic:
// equal input and options always produce equal output.
func (f *Formatter) Format(source string, overrides Options) (string, error) {
	opts := merge(f.defaults, overrides)
	if opts.Parser == "" {
		return "", fmt.Errorf("format: no parser configured")
	}

	src := strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	var out []string
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blanks++
			if blanks > opts.MaxBlankLines {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}

	// drop leading and trailing blank lines, end with exactly one newline
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	text := strings.Join(out, "\n") + "\n"
	if opts.EndOfLine == "crlf" {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text, nil
}

func merge(base, overrides Options) Options {
	if overrides.Parser != "" {
		base.Parser = overrides.Parser
	}
	if overrides.TabWidth != 0 {
		base.TabWidth = overrides.TabWidth
	}
	if overrides.UseTabs != nil {
		base.UseTabs = overrides.UseTabs
	}
	if overrides.EndOfLine != "" {
		base.EndOfLine = overrides.EndOfLine
	}
	if overrides.MaxBlankLines != 0 {
		base.MaxBlankLines = overrides.MaxBlankLines
	}
	return base
}
