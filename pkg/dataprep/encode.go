package dataprep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCode is returned when an integer target has no name.
var ErrUnknownCode = errors.New("dataprep: target code has no label name")

// DecodeLabels maps integer targets to names, names[code] being the label for code.
func DecodeLabels(codes []int, names []string) ([]string, error) {
	out := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(names) {
			return nil, fmt.Errorf("%w: %d at row %d", ErrUnknownCode, c, i)
		}
		out[i] = names[c]
	}
	return out, nil
}

// NormalizeLabels trims surrounding whitespace and lowercases every label.
func NormalizeLabels(data []string) []string {
	out := make([]string, len(data))
	for i, v := range data {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
