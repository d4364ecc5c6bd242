// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argfile builds argv parser trees from declarative TOML or YAML
// schema files, so a program's switch and command layout can live next to
// its code instead of in builder calls.
//
// A minimal schema:
//
//	name = "cryptool"
//	help = "Encrypt and decrypt files"
//
//	[[options]]
//	kind = "switch"
//	short = "v"
//	long = "verbose"
//	help = "Enable verbose output"
//
//	[[commands]]
//	keyword = "encrypt"
//	help = "Encrypt a file"
//
//	[[commands.options]]
//	kind = "capture"
//	short = "i"
//	long = "input"
//	max = 1
package argfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yeetrun/argv/pkg/argv"
)

// Version is the schema version this package reads. Files may omit the
// version field; any other value is rejected.
const Version = 1

// Format selects the schema codec for LoadBytes.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// File is the root of a parser schema. Commands nest recursively.
type File struct {
	Version  int       `toml:"version,omitempty" yaml:"version,omitempty"`
	Name     string    `toml:"name" yaml:"name"`
	Help     string    `toml:"help,omitempty" yaml:"help,omitempty"`
	Options  []Option  `toml:"options,omitempty" yaml:"options,omitempty"`
	Choices  []Choice  `toml:"choices,omitempty" yaml:"choices,omitempty"`
	Commands []Command `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

// Option declares one switch, on/off switch, or capturing option.
// Kind is "switch" (the default), "onoff", or "capture". Min defaults
// to 1 for captures; Max 0 means unbounded. Default applies to onoff
// switches only, as "on" or "off".
type Option struct {
	Kind    string `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Short   string `toml:"short,omitempty" yaml:"short,omitempty"`
	Long    string `toml:"long,omitempty" yaml:"long,omitempty"`
	Help    string `toml:"help,omitempty" yaml:"help,omitempty"`
	Min     int    `toml:"min,omitempty" yaml:"min,omitempty"`
	Max     int    `toml:"max,omitempty" yaml:"max,omitempty"`
	Default string `toml:"default,omitempty" yaml:"default,omitempty"`
}

// Item declares one member of a choice group.
type Item struct {
	Short string `toml:"short" yaml:"short"`
	Long  string `toml:"long,omitempty" yaml:"long,omitempty"`
	Help  string `toml:"help,omitempty" yaml:"help,omitempty"`
}

// Choice declares a group of mutually exclusive switches. Default is the
// short name reported when nothing in the group is selected.
type Choice struct {
	Default string `toml:"default" yaml:"default"`
	Help    string `toml:"help,omitempty" yaml:"help,omitempty"`
	Items   []Item `toml:"items" yaml:"items"`
}

// Command declares a nested command with its own registry.
type Command struct {
	Keyword  string    `toml:"keyword" yaml:"keyword"`
	Help     string    `toml:"help,omitempty" yaml:"help,omitempty"`
	Options  []Option  `toml:"options,omitempty" yaml:"options,omitempty"`
	Choices  []Choice  `toml:"choices,omitempty" yaml:"choices,omitempty"`
	Commands []Command `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

// Load reads a schema file and builds its parser tree. The codec follows
// the file extension: .toml, .yaml, or .yml.
func Load(path string) (*argv.Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("argfile: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadBytes(data, FormatTOML)
	case ".yaml", ".yml":
		return LoadBytes(data, FormatYAML)
	}
	return nil, fmt.Errorf("argfile: unsupported schema extension %q", filepath.Ext(path))
}

// LoadBytes decodes a schema and builds its parser tree.
func LoadBytes(data []byte, format Format) (*argv.Parser, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("argfile: decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("argfile: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("argfile: unknown format %d", format)
	}
	return Build(&f)
}

// Build constructs the parser tree for a decoded schema. Registration
// conflicts surface as a *argv.DuplicateNameError instead of a panic.
func Build(f *File) (p *argv.Parser, err error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, errors.New("argfile: name is required")
	}
	if f.Version != 0 && f.Version != Version {
		return nil, fmt.Errorf("argfile: unsupported schema version %d (want %d)", f.Version, Version)
	}
	defer func() {
		if r := recover(); r != nil {
			dup, ok := r.(*argv.DuplicateNameError)
			if !ok {
				panic(r)
			}
			p, err = nil, dup
		}
	}()
	p = argv.New(strings.TrimSpace(f.Name), f.Help)
	if err := populate(p, f.Options, f.Choices, f.Commands); err != nil {
		return nil, err
	}
	return p, nil
}

func populate(p *argv.Parser, opts []Option, choices []Choice, cmds []Command) error {
	for _, o := range opts {
		short, err := shortRune(o.Short)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(o.Kind)) {
		case "", "switch":
			p.Switch(short, o.Long, o.Help)
		case "onoff":
			def, err := triState(o.Default)
			if err != nil {
				return err
			}
			p.OnOff(short, o.Long, def, o.Help)
		case "capture":
			minVals := o.Min
			if minVals == 0 {
				minVals = 1
			}
			if o.Max != argv.Unbounded && o.Max < minVals {
				return fmt.Errorf("argfile: capture %s: bounds %d-%d are inverted", optionName(o), minVals, o.Max)
			}
			p.CaptureN(short, o.Long, minVals, o.Max, o.Help)
		default:
			return fmt.Errorf("argfile: unknown option kind %q", o.Kind)
		}
	}
	for _, c := range choices {
		def, err := shortRune(c.Default)
		if err != nil {
			return err
		}
		g := p.Choice(def, c.Help)
		for _, it := range c.Items {
			short, err := shortRune(it.Short)
			if err != nil {
				return err
			}
			g.Item(short, it.Long, it.Help)
		}
	}
	for _, c := range cmds {
		if strings.TrimSpace(c.Keyword) == "" {
			return errors.New("argfile: command keyword is required")
		}
		child := p.Command(c.Keyword, c.Help)
		if err := populate(child, c.Options, c.Choices, c.Commands); err != nil {
			return err
		}
	}
	return nil
}

func optionName(o Option) string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

func shortRune(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return argv.NoShort, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("argfile: short name %q must be a single character", s)
	}
	return runes[0], nil
}

func triState(s string) (argv.TriState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return argv.StateUndefined, nil
	case "on":
		return argv.StateOn, nil
	case "off":
		return argv.StateOff, nil
	}
	return argv.StateUndefined, fmt.Errorf("argfile: invalid onoff default %q (want on or off)", s)
}
