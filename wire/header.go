package wire

// Magic identifies a blobfig artifact. It occupies the first four bytes
// of every encoded buffer.
const Magic = "BFIG"

// Version is the current format version, stored as a little-endian u16
// immediately after the magic.
const Version uint16 = 1

// HeaderSize is the fixed header length: magic, version, and the u32
// absolute offset of the root value.
const HeaderSize = len(Magic) + 2 + 4

// Pad returns the number of zero bytes needed so that a payload starting
// at absolute offset off lands on a multiple of align. align must be a
// power of two in {1, 2, 4, 8}.
func Pad(off int, align int) int {
	return (align - off&(align-1)) & (align - 1)
}
