package upload

import "io"

// UploadInput - file sent as the "file" part plus extra form fields
type UploadInput struct {
	FileName string
	Content  io.Reader
	Fields   map[string]string
}

// UploadOutput - stored file as reported by the server
type UploadOutput struct {
	FileID   string
	FileName string
	URL      string
	Size     int64
}
