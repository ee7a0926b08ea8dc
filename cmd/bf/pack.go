package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"github.com/blobfig/go-blobfig/debug"
	"github.com/blobfig/go-blobfig/encode"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: pack wants one manifest argument", cli.ErrUsage)
	}
	arg := args[0]
	doc, baseDir, err := readManifest(arg)
	if err != nil {
		return err
	}
	v, err := manifestToIR(doc, baseDir)
	if err != nil {
		return fmt.Errorf("error building %s: %w", arg, err)
	}
	if debug.Pack() {
		debug.Logf("bf: packing %s\n", arg)
	}
	if err := encode.Encode(v, cc.Out); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}

// readManifest decodes a YAML or JSON manifest (by extension, JSON
// only for .json) and returns the document plus the directory $file
// paths resolve against.
func readManifest(arg string) (any, string, error) {
	var (
		in      []byte
		baseDir string
		err     error
	)
	if arg == "-" {
		in, err = io.ReadAll(os.Stdin)
		baseDir = "."
	} else {
		in, err = os.ReadFile(arg)
		baseDir = filepath.Dir(arg)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error reading %s: %w", arg, err)
	}
	var doc any
	if strings.HasSuffix(arg, ".json") {
		dec := json.NewDecoder(bytes.NewReader(in))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, "", fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return doc, baseDir, nil
	}
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, "", fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, baseDir, nil
}
