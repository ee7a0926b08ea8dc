package parse

// FileView is a tagged byte blob decoded in place. Both the mime string
// and the payload borrow from the parsed buffer.
type FileView struct {
	Mime string
	Data []byte
}

func (f *FileView) Size() int {
	return len(f.Data)
}
