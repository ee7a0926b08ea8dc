package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blobfig/go-blobfig/parse"
)

// withInput hands fn the bytes of one input argument. "-" reads stdin;
// regular files are memory-mapped read-only where the platform allows,
// so parsing borrows straight from the page cache. fn must not retain
// the bytes past its return.
func withInput(arg string, fn func(data []byte) error) error {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		return fn(data)
	}
	data, done, err := mapFile(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	defer done()
	return fn(data)
}

func parseArg(arg string, fn func(root *parse.View) error) error {
	return withInput(arg, func(data []byte) error {
		root, err := parse.Parse(data)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		return fn(root)
	})
}

func readFileAll(path string) ([]byte, func(), error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
