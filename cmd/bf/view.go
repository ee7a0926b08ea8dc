package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/blobfig/go-blobfig/dump"
	"github.com/blobfig/go-blobfig/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		err := parseArg(arg, func(root *parse.View) error {
			return dump.Dump(root, cc.Out, cfg.dumpOpts(cc.Out)...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := io.WriteString(w, "---\n")
	return err
}
