package filesystem

// File - content of a file located at Path, Desc is used in error messages.
type File struct {
	Desc    string
	Path    string
	Content string
}

func NewFile(path, content string) *File {
	return &File{Path: path, Content: content}
}

func (f *File) SetDescription(desc string) *File {
	f.Desc = desc
	return f
}
