package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"irisprop/pkg/stats"
)

// ErrExportFormat is returned for export paths that are neither YAML nor JSON.
var ErrExportFormat = errors.New("report: export format must be yaml or json")

// ExportEntry is the serialized form of one label share.
type ExportEntry struct {
	Label    string  `yaml:"label" json:"label"`
	Count    int     `yaml:"count" json:"count"`
	Fraction float64 `yaml:"fraction" json:"fraction"`
	Percent  float64 `yaml:"percent" json:"percent"`
}

// ExportDoc is the document written by Export.
type ExportDoc struct {
	Source  string        `yaml:"source" json:"source"`
	Total   int           `yaml:"total" json:"total"`
	Sum     float64       `yaml:"sum" json:"sum"`
	Entries []ExportEntry `yaml:"proportions" json:"proportions"`
}

// NewExportDoc converts a table, keeping its label order.
func NewExportDoc(source string, pt *stats.ProportionTable) ExportDoc {
	doc := ExportDoc{Source: source, Total: pt.Total(), Sum: pt.Sum()}
	for _, e := range pt.Entries() {
		doc.Entries = append(doc.Entries, ExportEntry{
			Label:    e.Label,
			Count:    e.Count,
			Fraction: e.Fraction,
			Percent:  e.Fraction * 100,
		})
	}
	return doc
}

// Encode writes doc as "yaml" or "json".
func Encode(w io.Writer, doc ExportDoc, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrExportFormat, format)
	}
}

// Export writes the table to path, format chosen by extension.
func Export(path, source string, pt *stats.ProportionTable) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var buf strings.Builder
	if err := Encode(&buf, NewExportDoc(source, pt), format); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
