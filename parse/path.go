package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blobfig/go-blobfig/wire"
)

// Get resolves a '/'-separated path from this view. One leading and one
// trailing slash are ignored, so "a/b", "/a/b" and "a/b/" address the
// same value; the empty path resolves to the view itself. Object values
// are traversed by key, list values by decimal index. A missing key, an
// out-of-range index, or a segment applied to a non-container value is
// ErrNotFound; an empty interior segment is ErrPath. The leaf may be of
// any kind.
func (v *View) Get(path string) (*View, error) {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return v, nil
	}
	res := v
	for i, seg := range strings.Split(path, "/") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrPath, i, path)
		}
		next, err := res.step(seg)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", seg, err)
		}
		res = next
	}
	return res, nil
}

// Has reports whether a path resolves, swallowing ErrNotFound.
func (v *View) Has(path string) (bool, error) {
	_, err := v.Get(path)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (v *View) step(seg string) (*View, error) {
	kind, err := v.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case wire.ObjectTag:
		obj, err := v.AsObject()
		if err != nil {
			return nil, err
		}
		return obj.Get(seg)
	case wire.ListTag:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: list wants a decimal index", ErrNotFound)
		}
		list, err := v.AsList()
		if err != nil {
			return nil, err
		}
		return list.At(i)
	}
	return nil, fmt.Errorf("%w: %s value is not a container", ErrNotFound, kind)
}
