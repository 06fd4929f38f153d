package domain

import "io"

type UploadedFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type ExportArtifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

func (a *ExportArtifact) Size() int {
	return len(a.Data)
}
