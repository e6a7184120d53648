package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Report Serialization API
// =============================================================================

// Marshal encodes a report as indented JSON.
func Marshal(r Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a report from JSON bytes.
func Unmarshal(data []byte) (Report, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a report as indented JSON to w.
func Write(r Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON report from r. Read does not close r.
func Read(r io.Reader) (Report, error) {
	var out Report
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Report{}, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// WriteFile writes a report to a JSON file.
func WriteFile(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(r, f)
}

// ReadFile reads a JSON report file.
func ReadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
