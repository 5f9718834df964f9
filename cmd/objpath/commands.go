package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/FronterAS/objpath"
	"github.com/FronterAS/objpath/internal/document"
)

// ErrNotFound is returned by get when the path cannot be reached.
var ErrNotFound = errors.New("path not found")

// Context is shared by all commands.
type Context struct {
	Settings Settings
	Stdin    io.Reader
	Stdout   io.Writer
	Log      *slog.Logger
}

func (ctx *Context) printer() *printer {
	return newPrinter(ctx.Stdout, ctx.Settings)
}

// load parses the path and decodes the document named by file.
func (ctx *Context) load(path, file string) (objpath.Path, interface{}, error) {
	p, err := objpath.Parse(path)
	if err != nil {
		return objpath.Path{}, nil, err
	}
	var doc interface{}
	if file == "-" {
		doc, err = document.Read(ctx.Stdin)
	} else {
		doc, err = document.Load(file)
	}
	if err != nil {
		return objpath.Path{}, nil, err
	}
	ctx.Log.Debug("document loaded", "file", file, "steps", p.Len())
	return p, doc, nil
}

// GetCmd prints the value at a path.
type GetCmd struct {
	Path string `arg:"" help:"Path expression, e.g. items[0].name"`
	File string `arg:"" optional:"" default:"-" help:"JSON or YAML document, - for standard input"`
}

func (c *GetCmd) Run(ctx *Context) error {
	p, doc, err := ctx.load(c.Path, c.File)
	if err != nil {
		return err
	}
	v, ok := p.Value(doc)
	ctx.Log.Debug("resolved", "path", p.String(), "found", ok)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, c.Path)
	}
	return ctx.printer().value(v)
}

// InfoCmd prints the parent, name, value and existence of a path.
type InfoCmd struct {
	Path string `arg:"" help:"Path expression, e.g. items[0].name"`
	File string `arg:"" optional:"" default:"-" help:"JSON or YAML document, - for standard input"`
}

func (c *InfoCmd) Run(ctx *Context) error {
	p, doc, err := ctx.load(c.Path, c.File)
	if err != nil {
		return err
	}
	info := p.Info(doc)
	ctx.Log.Debug("resolved", "path", p.String(), "found", info.Found, "exists", info.Exists)
	return ctx.printer().info(info)
}

// ParseCmd prints the steps of a path without resolving it.
type ParseCmd struct {
	Path string `arg:"" help:"Path expression, e.g. items[0].name"`
}

func (c *ParseCmd) Run(ctx *Context) error {
	p, err := objpath.Parse(c.Path)
	if err != nil {
		return err
	}
	return ctx.printer().steps(p)
}
