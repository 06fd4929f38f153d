package domain

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatCSV         Format = "csv"
	FormatXLSX        Format = "xlsx"
	FormatUnsupported Format = "unsupported"
)

const (
	MIMETypeCSV  = "text/csv"
	MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DetectFormat infers the format from the lowercased extension of name.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatUnsupported
	}
}

func (f Format) Supported() bool {
	return f == FormatCSV || f == FormatXLSX
}

func (f Format) Extension() string {
	if !f.Supported() {
		return ""
	}
	return "." + string(f)
}

func (f Format) MIMEType() string {
	switch f {
	case FormatCSV:
		return MIMETypeCSV
	case FormatXLSX:
		return MIMETypeXLSX
	default:
		return ""
	}
}

// OutputFilename replaces the extension of name with the one of target.
// A name without extension gets the target extension appended.
func OutputFilename(name string, target Format) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + target.Extension()
}
