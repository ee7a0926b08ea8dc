package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/blobfig/go-blobfig/dump"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render with color'"`
	Inline int  `cli:"name=inline desc='render array payloads of up to n elements inline'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// dumpOpts assembles rendering options: explicit -color wins, and
// otherwise color turns on when writing to a terminal.
func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	var res []dump.Option
	if cfg.Inline > 0 {
		res = append(res, dump.InlineArrays(cfg.Inline))
	}
	if cfg.Color {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='write string/file/array payload bytes verbatim'"`

	Get *cli.Command
}

type PackConfig struct {
	*MainConfig

	Pack *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}
