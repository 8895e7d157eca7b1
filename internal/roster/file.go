// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/playmatch/internal/profile"
)

// Format is a roster file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for roster files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported roster format")

// File is the on-disk layout of a roster.
type File struct {
	// Target names the profile to rank others against. Optional.
	Target   string         `json:"target,omitempty" yaml:"target,omitempty"`
	Profiles []profile.Spec `json:"profiles" yaml:"profiles"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (want .yaml, .yml or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a roster from a YAML or JSON file.
func LoadFile(path string) (*Roster, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	r, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Decode parses roster data. Unknown fields are rejected, every profile is
// validated, and names must be unique.
func Decode(data []byte, format Format) (*Roster, error) {
	var f File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return FromFile(f)
}

// FromFile builds a roster from its file layout.
func FromFile(f File) (*Roster, error) {
	r := New()
	for i, spec := range f.Profiles {
		p, err := profile.FromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		if err := r.Add(p); err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
	}

	if f.Target != "" {
		if err := r.SetTarget(f.Target); err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
	}
	return r, nil
}

// ToFile returns the file layout of the roster.
func (r *Roster) ToFile() File {
	f := File{
		Target:   r.target,
		Profiles: make([]profile.Spec, len(r.profiles)),
	}
	for i, p := range r.profiles {
		f.Profiles[i] = p.Spec()
	}
	return f
}

// Encode writes the roster in the given format.
func (r *Roster) Encode(w io.Writer, format Format) error {
	f := r.ToFile()

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
