package document

import (
	"context"
	"io"
	"os"
	"strconv"
)

// File is a Source backed by a file on disk.
type File struct {
	path string
	Content
}

var _ Source = (*File)(nil)

// NewFile creates a file source for path. The file is not touched until Load.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the whole file into the source's Content and records filename
// and modification-time metadata.
func (f *File) Load(_ context.Context) error {
	fp, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ErrIsDirectory
	}
	f.SetMeta("filename", info.Name())
	f.SetMeta("modtime", strconv.FormatInt(info.ModTime().Unix(), 10))
	f.Reset()
	_, err = io.Copy(&f.Content, fp)
	return err
}
