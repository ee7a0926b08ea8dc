package ir

// File is an owned tagged byte blob: a mime type and opaque payload of
// arbitrary content. The payload has no alignment requirement.
type File struct {
	Mime string
	Data []byte
}

func NewFile(mime string, data []byte) *File {
	return &File{Mime: mime, Data: data}
}

func (f *File) Size() int {
	return len(f.Data)
}
