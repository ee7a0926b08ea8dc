package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/blobfig/go-blobfig/dump"
	"github.com/blobfig/go-blobfig/parse"
	"github.com/blobfig/go-blobfig/wire"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 && !cfg.Raw {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		err := parseArg(arg, func(root *parse.View) error {
			res, err := root.Get(path)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
			}
			if cfg.Raw {
				return writeRaw(res, cc.Out)
			}
			return dump.Dump(res, cc.Out, cfg.dumpOpts(cc.Out)...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeRaw writes the payload bytes of a leaf value verbatim: string
// bytes, file bytes, or an array's packed little-endian payload.
func writeRaw(v *parse.View, w io.Writer) error {
	kind, err := v.Kind()
	if err != nil {
		return err
	}
	switch kind {
	case wire.StringTag:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	case wire.FileTag:
		f, err := v.AsFile()
		if err != nil {
			return err
		}
		_, err = w.Write(f.Data)
		return err
	case wire.ArrayTag:
		a, err := v.AsArray()
		if err != nil {
			return err
		}
		_, err = w.Write(a.Data)
		return err
	}
	return fmt.Errorf("-raw wants a string, file, or array, not %s", kind)
}
