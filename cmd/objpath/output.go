package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/FronterAS/objpath"
)

// printer writes results in the configured format. Colour is only used by
// the text format.
type printer struct {
	w      io.Writer
	format string
	label  *color.Color
	muted  *color.Color
}

func newPrinter(w io.Writer, s Settings) *printer {
	p := &printer{
		w:      w,
		format: s.Format,
		label:  color.New(color.FgCyan, color.Bold),
		muted:  color.New(color.Faint),
	}
	if useColor(w, s.Color) {
		p.label.EnableColor()
		p.muted.EnableColor()
	} else {
		p.label.DisableColor()
		p.muted.DisableColor()
	}
	return p
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) value(v interface{}) error {
	if p.format == "text" {
		s, err := textOf(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, s)
		return err
	}
	return p.encode(v)
}

func (p *printer) info(i objpath.Info) error {
	switch p.format {
	case "json":
		return p.encode(i)
	case "yaml":
		return p.encode(infoMap(i))
	}

	parent, err := textOf(i.Parent)
	if err != nil {
		return err
	}
	value := p.muted.Sprint("<absent>")
	if i.Found {
		if value, err = textOf(i.Value); err != nil {
			return err
		}
	}
	rows := [][2]string{
		{"parent", parent},
		{"name", fmt.Sprint(i.Name.Value())},
		{"value", value},
		{"exists", fmt.Sprint(i.Exists)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%-7s", r[0]+":"), r[1]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) steps(path objpath.Path) error {
	if p.format != "text" {
		list := make([]map[string]interface{}, 0, path.Len())
		for _, s := range path.Steps() {
			m := map[string]interface{}{"kind": s.Kind.String()}
			if s.Kind == objpath.IndexStep {
				m["index"] = s.Index
			} else {
				m["key"] = s.Key
			}
			list = append(list, m)
		}
		return p.encode(list)
	}
	for _, s := range path.Steps() {
		if _, err := fmt.Fprintf(p.w, "%s %v\n", p.label.Sprintf("%-8s", s.Kind), s.Value()); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) encode(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if p.format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = p.w.Write(data)
	return err
}

func infoMap(i objpath.Info) map[string]interface{} {
	m := map[string]interface{}{
		"parent": i.Parent,
		"name":   i.Name.Value(),
		"exists": i.Exists,
	}
	if i.Found {
		m["value"] = i.Value
	}
	return m
}

// textOf renders strings bare, nil as null, and everything else as compact JSON.
func textOf(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
