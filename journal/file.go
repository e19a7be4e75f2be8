package journal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Journal file formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// DetectFormat picks a journal format from the filename extension,
// falling back to sniffing the content: a leading '[' means JSON,
// anything else CSV.
func DetectFormat(filename string, content []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	}

	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatCSV
}

// Read reads records in the given format.
func Read(r io.Reader, format string) ([]Record, error) {
	if format == FormatJSON {
		return ReadJSON(r)
	}
	return ReadCSV(r)
}

// ReadFile reads a journal file, detecting the format from its name and
// content.
func ReadFile(path string) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return Read(bytes.NewReader(content), DetectFormat(path, content))
}
