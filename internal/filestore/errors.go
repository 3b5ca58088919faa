package filestore

import "fmt"

// FileTooLargeError indicates an upload exceeding the configured size limit
type FileTooLargeError struct {
	Filename string
	Size     int64
	Limit    int64
}

func (e FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is too large: %d bytes exceeds limit of %d bytes", e.Filename, e.Size, e.Limit)
}

// UnsupportedFileTypeError indicates an upload with an unaccepted extension
type UnsupportedFileTypeError struct {
	Filename  string
	Extension string
}

func (e UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for file %s", e.Extension, e.Filename)
}
