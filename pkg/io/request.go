package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/search"
)

// Format is a request file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Request is the on-disk form of a generation request.
type Request struct {
	layout.Config
	Options search.Params `json:"options,omitzero" toml:"options"`
	Count   int           `json:"count,omitempty" toml:"count"`
}

// PipelineOptions converts the request for pipeline.Runner.
func (r Request) PipelineOptions() pipeline.Options {
	return pipeline.Options{Config: r.Config, Search: r.Options, Count: r.Count}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if path == "-" {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported request file %q (must end in .toml or .json)", path)
}

// ReadRequest decodes a request in the given format.
func ReadRequest(r io.Reader, format Format) (Request, error) {
	var req Request
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return Request{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json request")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&req)
		if err != nil {
			return Request{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml request")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Request{}, errors.New(errors.ErrCodeInvalidInput,
				"unknown keys in toml request: %s", strings.Join(keys, ", "))
		}
	default:
		return Request{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported request format %q", format)
	}
	return req, nil
}

// ReadRequestFile reads a request from path, or from stdin when path is "-".
func ReadRequestFile(path string) (Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Request{}, err
	}
	data, err := readPath(path)
	if err != nil {
		return Request{}, err
	}
	req, err := ReadRequest(bytes.NewReader(data), format)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// ReadConfigFile reads only the layout config of a request file.
func ReadConfigFile(path string) (layout.Config, error) {
	req, err := ReadRequestFile(path)
	if err != nil {
		return layout.Config{}, err
	}
	return req.Config, nil
}

func readPath(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "request file %s", path)
	}
	return data, err
}
