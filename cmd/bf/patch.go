package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/blobfig/go-blobfig/debug"
	"github.com/blobfig/go-blobfig/encode"
	"github.com/blobfig/go-blobfig/parse"
)

// patch applies an RFC 6902 patch to the artifact's manifest
// projection and re-encodes the result. Array and file payloads appear
// to the patch as their $-spelled objects, so operations can replace a
// payload wholesale but not address single elements.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch wants an artifact and a patch file", cli.ErrUsage)
	}
	patchBytes, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	p, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return parseArg(args[0], func(root *parse.View) error {
		v, err := root.Decode()
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		plain, err := irToManifest(v)
		if err != nil {
			return err
		}
		doc, err := json.Marshal(plain)
		if err != nil {
			return err
		}
		if debug.Patch() {
			debug.Logf("bf: patching %s: %d ops over %d bytes\n",
				args[0], len(p), len(doc))
		}
		patched, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error applying %s: %w", args[1], err)
		}
		dec := json.NewDecoder(bytes.NewReader(patched))
		dec.UseNumber()
		var out any
		if err := dec.Decode(&out); err != nil {
			return err
		}
		pv, err := manifestToIR(out, ".")
		if err != nil {
			return fmt.Errorf("error rebuilding %s: %w", args[0], err)
		}
		if err := encode.Encode(pv, cc.Out); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
