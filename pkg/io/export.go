package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/vibegrid/pkg/layout"
)

// WriteLayout writes l as indented JSON followed by a newline.
func WriteLayout(l layout.GeneratedLayout, w io.Writer) error {
	return layout.Write(l, w)
}

// WriteLayoutFile writes l to path, creating parent directories. A path of
// "-" writes to stdout.
func WriteLayoutFile(l layout.GeneratedLayout, path string) error {
	if path == "-" {
		return WriteLayout(l, os.Stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return layout.WriteFile(l, path)
}

// ReadLayoutFile reads a generated layout, or stdin when path is "-".
func ReadLayoutFile(path string) (layout.GeneratedLayout, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return layout.GeneratedLayout{}, err
		}
		return layout.Unmarshal(data)
	}
	return layout.ReadFile(path)
}
