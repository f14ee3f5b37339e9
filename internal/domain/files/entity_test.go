package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileType(t *testing.T) {
	accepted := map[FileType][]string{
		TypeContract: {"pdf", "doc", "docx", "txt"},
		TypeWorklog:  {"csv", "json", "txt"},
		TypeLicense:  {"csv", "xlsx", "xls", "json", "txt"},
	}
	all := []string{"pdf", "doc", "docx", "txt", "csv", "json", "xlsx", "xls", "exe", "png"}

	for ft, exts := range accepted {
		allowed := map[string]bool{}
		for _, e := range exts {
			allowed[e] = true
		}
		for _, ext := range all {
			got := ValidateFileType("report."+ext, ft)
			assert.Equalf(t, allowed[ext], got, "type=%s ext=%s", ft, ext)
		}
	}
}

func TestValidateFileTypeEdgeCases(t *testing.T) {
	assert.False(t, ValidateFileType("contract.pdf", FileType("invoice")), "unknown category")
	assert.False(t, ValidateFileType("noextension", TypeContract))
	assert.True(t, ValidateFileType("REPORT.PDF", TypeContract), "case-insensitive extension")
	assert.True(t, ValidateFileType("archive.tar.txt", TypeContract), "last extension wins")
	assert.False(t, ValidateFileType("archive.txt.tar", TypeContract))
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"contract", "worklog", "license"} {
		got, err := ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, FileType(s), got)
	}

	_, err := ParseType("invoice")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = ParseType("")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestProcessText(t *testing.T) {
	assert.Equal(t, "hello,world", ProcessText([]byte("hello,world")))
	// binary blobs are decoded as-is, not parsed
	assert.Equal(t, "%PDF-1.4", ProcessText([]byte("%PDF-1.4")))
}
