package files

import (
	"strings"
	"time"
)

// ID tipe untuk UploadedFile
type FileID string

// FileType enum
type FileType string

const (
	TypeContract FileType = "contract"
	TypeWorklog  FileType = "worklog"
	TypeLicense  FileType = "license"
)

// Aggregate Root: UploadedFile
type UploadedFile struct {
	ID           FileID    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Type         FileType  `json:"type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Content      string    `json:"content,omitempty"`
	Processed    bool      `json:"processed"`
	ArchiveURL   string    `json:"archive_url,omitempty"`
}

// ParseType validates the declared upload category
func ParseType(s string) (FileType, error) {
	switch FileType(s) {
	case TypeContract, TypeWorklog, TypeLicense:
		return FileType(s), nil
	}
	return "", ErrUnknownType
}

// allowed extensions per declared category
var allowedExtensions = map[FileType]map[string]bool{
	TypeContract: {"pdf": true, "doc": true, "docx": true, "txt": true},
	TypeWorklog:  {"csv": true, "json": true, "txt": true},
	TypeLicense:  {"csv": true, "xlsx": true, "xls": true, "json": true, "txt": true},
}

// ValidateFileType checks the filename's extension against the
// allow-list for the declared category. Unknown categories and files
// without a matching extension return false.
func ValidateFileType(filename string, t FileType) bool {
	exts, ok := allowedExtensions[t]
	if !ok {
		return false
	}
	name := strings.ToLower(filename)
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return exts[name[i+1:]]
}

// ProcessText decodes an uploaded blob as UTF-8 text unconditionally.
// Binary formats (pdf, doc, xlsx) are NOT parsed into extracted text;
// their content will be garbled. Callers must be aware of this.
func ProcessText(raw []byte) string {
	return string(raw)
}
