package finding

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// ExportFormat represents the format for exporting collected findings.
type ExportFormat string

const (
	// FormatJSON exports findings as an indented JSON array.
	FormatJSON ExportFormat = "json"

	// FormatCSV exports findings as comma-separated values with a header
	// row.
	FormatCSV ExportFormat = "csv"
)

// IsValid returns true if the export format is valid.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format.
func (f ExportFormat) String() string {
	return string(f)
}

// FileExtension returns the file extension for the export format.
func (f ExportFormat) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	default:
		return ""
	}
}

// ParseExportFormat parses a string into an ExportFormat value.
// Returns an error if the string is not a valid export format.
func ParseExportFormat(s string) (ExportFormat, error) {
	format := ExportFormat(s)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid export format: %s", s)
	}
	return format, nil
}

// AllExportFormats returns all valid export formats.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		FormatJSON,
		FormatCSV,
	}
}

// Write renders findings to w in the given format.
func Write(w io.Writer, format ExportFormat, findings []Finding) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, findings)
	case FormatCSV:
		return writeCSV(w, findings)
	default:
		return fmt.Errorf("invalid export format: %s", format)
	}
}

func writeJSON(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

func writeCSV(w io.Writer, findings []Finding) error {
	cw := csv.NewWriter(w)
	header := []string{"kind", "context", "node_path", "part", "property", "relative_path"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{f.Kind.String(), f.Context, f.NodePath, f.Part, f.Property, f.RelativePath}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
