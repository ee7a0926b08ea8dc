package encode

type encState struct {
	keepLast bool
}

type Option func(*encState)

// KeepLastDuplicate downgrades duplicate-key handling from rejection to
// last-write-wins: the last value for a repeated key is kept, at the
// position of the key's first occurrence. Intended for callers migrating
// trees that already contain duplicates; new writers should let the
// default rejection stand.
func KeepLastDuplicate() Option {
	return func(es *encState) { es.keepLast = true }
}
