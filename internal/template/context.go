package template

import "path/filepath"

// FileData is the data a message template is rendered against.
type FileData struct {
	Path string
	Name string
	Dir  string
	Ext  string
}

// BuildFileData derives template fields from a file path.
func BuildFileData(path string) FileData {
	return FileData{
		Path: path,
		Name: filepath.Base(path),
		Dir:  filepath.Dir(path),
		Ext:  filepath.Ext(path),
	}
}
