package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/blobfig/go-blobfig/dump"
	"github.com/blobfig/go-blobfig/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff wants two artifact arguments", cli.ErrUsage)
	}
	a, err := renderArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := renderArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if diffColor(cfg.MainConfig, cc.Out) {
		_, err = io.WriteString(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		_, err = io.WriteString(cc.Out, diffPlainText(diffs))
	}
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// renderArg dumps one artifact to text, without color so the texts
// compare cleanly.
func renderArg(cfg *MainConfig, arg string) (string, error) {
	var sb strings.Builder
	opts := []dump.Option{}
	if cfg.Inline > 0 {
		opts = append(opts, dump.InlineArrays(cfg.Inline))
	}
	err := parseArg(arg, func(root *parse.View) error {
		return dump.Dump(root, &sb, opts...)
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func diffColor(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// diffPlainText renders diffs line-oriented for pipes: deletions
// prefixed with '-', insertions with '+', context unmarked.
func diffPlainText(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		prefix := ""
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
