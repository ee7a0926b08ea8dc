//go:build !unix

package main

func mapFile(path string) ([]byte, func(), error) {
	return readFileAll(path)
}
