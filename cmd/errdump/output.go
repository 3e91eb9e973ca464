package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/secureworks/errno"
)

// encoder writes parsed errors in one of the output formats.
type encoder interface {
	encode(w io.Writer, values []*errno.Value) error
}

func newEncoder(format string, colored bool) (encoder, error) {
	switch format {
	case "text", "":
		return newTextEncoder(colored), nil
	case "json":
		return jsonEncoder{}, nil
	case "yaml":
		return yamlEncoder{}, nil
	case "toml":
		return tomlEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func reports(values []*errno.Value) []errno.Report {
	r := make([]errno.Report, len(values))
	for i, v := range values {
		r[i] = v.Report()
	}
	return r
}

// textEncoder writes the dumps again, highlighting their fields.
type textEncoder struct {
	code    *color.Color
	message *color.Color
	frame   *color.Color
	rule    *color.Color
}

func newTextEncoder(colored bool) *textEncoder {
	e := &textEncoder{
		code:    color.New(color.FgRed, color.Bold),
		message: color.New(color.FgYellow),
		frame:   color.New(color.FgCyan),
		rule:    color.New(color.FgHiBlack),
	}
	if !colored {
		for _, c := range []*color.Color{e.code, e.message, e.frame, e.rule} {
			c.DisableColor()
		}
	}
	return e
}

var (
	prefixCode    = []byte("Error code: ")
	prefixDesc    = []byte("Error desc: ")
	prefixMessage = []byte(" Error msg: ")
	prefixFrame   = []byte("   [")
	prefixRule    = []byte("====")
	prefixSep     = []byte("----")
)

func (e *textEncoder) encode(w io.Writer, values []*errno.Value) error {
	for _, v := range values {
		for _, line := range bytes.SplitAfter(v.AppendDump(nil), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			var err error
			switch {
			case bytes.HasPrefix(line, prefixCode), bytes.HasPrefix(line, prefixDesc):
				_, err = e.code.Fprint(w, string(line))
			case bytes.HasPrefix(line, prefixMessage):
				_, err = e.message.Fprint(w, string(line))
			case bytes.HasPrefix(line, prefixFrame):
				_, err = e.frame.Fprint(w, string(line))
			case bytes.HasPrefix(line, prefixRule), bytes.HasPrefix(line, prefixSep):
				_, err = e.rule.Fprint(w, string(line))
			default:
				_, err = w.Write(line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonEncoder struct{}

func (jsonEncoder) encode(w io.Writer, values []*errno.Value) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports(values))
}

type yamlEncoder struct{}

func (yamlEncoder) encode(w io.Writer, values []*errno.Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports(values)); err != nil {
		return err
	}
	return enc.Close()
}

type tomlEncoder struct{}

// TOML documents are tables, so the errors go under a top level key.
func (tomlEncoder) encode(w io.Writer, values []*errno.Value) error {
	doc := struct {
		Errors []errno.Report `toml:"errors"`
	}{Errors: reports(values)}
	return toml.NewEncoder(w).Encode(doc)
}
