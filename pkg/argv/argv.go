// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"
	"strings"
)

// TriState is the resolved state of an option after parsing.
type TriState int

const (
	// StateUndefined means the option was never touched by the parse
	// (or a capturing option never reached its minimum value count).
	StateUndefined TriState = iota
	// StateOn means the option was set, selected, or captured enough values.
	StateOn
	// StateOff means the option was explicitly turned off.
	StateOff
)

func (s TriState) String() string {
	switch s {
	case StateOn:
		return "on"
	case StateOff:
		return "off"
	default:
		return "undefined"
	}
}

// Unbounded is the max-value count for capturing options that accept any
// number of values.
const Unbounded = 0

// NoShort registers an option without a short name.
const NoShort rune = 0

// kind is the tagged variant backing option dispatch.
type kind int

const (
	kindSwitch kind = iota
	kindOnOff
	kindCapture
	kindChoice
)

// option is one slot in a parser's flat registry table. Definition and
// state live together; handles refer to slots by index.
type option struct {
	kind  kind
	short rune   // NoShort if absent
	long  string // lower-cased and trimmed, "" if absent
	help  string
	min   int // capture bounds; max == Unbounded means no limit
	max   int
	group int      // owning choice group index, -1 if none
	def   TriState // initial state for on/off switches

	state  TriState
	values []string
	count  int
}

// choiceGroup tracks mutual exclusion among a set of registered items.
type choiceGroup struct {
	items    []int
	def      rune
	help     string
	selected int // option index, -1 if nothing selected
	count    int
}

// DuplicateNameError reports a short or long name registered twice within
// the same registry. Registration panics with it; duplicate names are a
// programming error caught at build time.
type DuplicateNameError struct {
	Registry string // keyword of the parser level
	Name     string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("argv: duplicate name %q in %q registry", e.Name, e.Registry)
}

// UnknownSwitchError reports a switch-shaped token whose name failed
// registry lookup. It is never raised; Parse records it and returns false.
type UnknownSwitchError struct {
	Token string // the full offending token
	Name  string // the specific letter or long name that failed lookup
}

func (e *UnknownSwitchError) Error() string {
	return fmt.Sprintf("argv: unknown switch %q in token %q", e.Name, e.Token)
}

// Parser is one level of a command tree: a registry of options and choice
// groups plus a keyword table of nested commands. The root is created with
// New; nested levels with Command. Each level owns its results.
type Parser struct {
	keyword string
	help    string

	opts     []option
	groups   []choiceGroup
	byShort  map[rune]int
	byLong   map[string]int
	cmds     map[string]*Parser
	cmdOrder []string

	loose   []string
	rest    []string
	active  *Parser
	err     error
	pending int // option index awaiting more values, -1 if none
}

// New returns an empty root parser. name doubles as the keyword reported
// by Keyword and as the program name in generated help.
func New(name, help string) *Parser {
	return &Parser{
		keyword: name,
		help:    help,
		byShort: make(map[rune]int),
		byLong:  make(map[string]int),
		cmds:    make(map[string]*Parser),
		pending: -1,
	}
}

// Option is a handle to one registered option, valid for queries after
// Parse. The zero Option is not usable.
type Option struct {
	p  *Parser
	id int
}

// ChoiceGroup is a handle to a set of mutually exclusive options.
type ChoiceGroup struct {
	p  *Parser
	id int
}

// Switch registers a plain flag. Pass NoShort or "" to omit a name.
// Panics with *DuplicateNameError if either name is already taken.
func (p *Parser) Switch(short rune, long, help string) Option {
	return p.register(option{kind: kindSwitch, short: short, long: long, help: help, group: -1})
}

// OnOff registers a tri-state switch whose parsed state follows the
// prefix sign: '-' turns it off, '+' and '/' turn it on. def is the
// state reported when the switch never appears.
func (p *Parser) OnOff(short rune, long string, def TriState, help string) Option {
	return p.register(option{kind: kindOnOff, short: short, long: long, help: help, group: -1, def: def, state: def})
}

// Capture registers an option that consumes one following token as its
// value, with no upper bound on further values.
func (p *Parser) Capture(short rune, long, help string) Option {
	return p.CaptureN(short, long, 1, Unbounded, help)
}

// CaptureN registers a capturing option with explicit value bounds.
// min values must be seen before the option reads as on; once max values
// are captured, further tokens fall through to loose parameters.
func (p *Parser) CaptureN(short rune, long string, min, max int, help string) Option {
	if max != Unbounded && max < min {
		panic(fmt.Sprintf("argv: capture bounds %d-%d are inverted", min, max))
	}
	return p.register(option{kind: kindCapture, short: short, long: long, help: help, min: min, max: max, group: -1})
}

// Choice registers a group of mutually exclusive switches. defaultShort
// is the short name reported by Value when nothing was selected. Add
// members with Item.
func (p *Parser) Choice(defaultShort rune, help string) ChoiceGroup {
	p.groups = append(p.groups, choiceGroup{def: defaultShort, help: help, selected: -1})
	return ChoiceGroup{p: p, id: len(p.groups) - 1}
}

// Item registers one member of the group. Selecting it during a parse
// turns every sibling off.
func (g ChoiceGroup) Item(short rune, long, help string) Option {
	opt := g.p.register(option{kind: kindChoice, short: short, long: long, help: help, group: g.id})
	grp := &g.p.groups[g.id]
	grp.items = append(grp.items, opt.id)
	return opt
}

// Command registers a nested command and returns its parser, which is
// shaped exactly like the root and may nest further. Keywords match
// case-insensitively; registering one twice panics with
// *DuplicateNameError.
func (p *Parser) Command(keyword, help string) *Parser {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if _, ok := p.cmds[key]; ok {
		panic(&DuplicateNameError{Registry: p.keyword, Name: key})
	}
	child := New(key, help)
	p.cmds[key] = child
	p.cmdOrder = append(p.cmdOrder, key)
	return child
}

func (p *Parser) register(o option) Option {
	if o.short != NoShort {
		if _, ok := p.byShort[o.short]; ok {
			panic(&DuplicateNameError{Registry: p.keyword, Name: string(o.short)})
		}
	}
	o.long = strings.ToLower(strings.TrimSpace(o.long))
	if o.long != "" {
		if _, ok := p.byLong[o.long]; ok {
			panic(&DuplicateNameError{Registry: p.keyword, Name: o.long})
		}
	}
	p.opts = append(p.opts, o)
	id := len(p.opts) - 1
	if o.short != NoShort {
		p.byShort[o.short] = id
	}
	if o.long != "" {
		p.byLong[o.long] = id
	}
	return Option{p: p, id: id}
}

// State returns the option's tri-state after parsing.
func (o Option) State() TriState { return o.p.opts[o.id].state }

// On reports whether the option ended the parse in the on state.
func (o Option) On() bool { return o.State() == StateOn }

// Value returns the first captured value, or "" if none.
func (o Option) Value() string {
	vals := o.p.opts[o.id].values
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// Values returns all captured values in capture order.
func (o Option) Values() []string { return o.p.opts[o.id].values }

// ValueAt returns the i-th captured value, or "" if out of range.
func (o Option) ValueAt(i int) string {
	vals := o.p.opts[o.id].values
	if i < 0 || i >= len(vals) {
		return ""
	}
	return vals[i]
}

// Count returns how many times the option was set, or for capturing
// options how many values it captured.
func (o Option) Count() int { return o.p.opts[o.id].count }

// ShortName returns the registered short name, or NoShort.
func (o Option) ShortName() rune { return o.p.opts[o.id].short }

// LongName returns the registered long name (lower-cased), or "".
func (o Option) LongName() string { return o.p.opts[o.id].long }

// HelpText returns the registered help string.
func (o Option) HelpText() string { return o.p.opts[o.id].help }

// Options returns handles to every registered option at this level, in
// registration order. Read-only registry metadata for help generators
// and inspectors.
func (p *Parser) Options() []Option {
	out := make([]Option, len(p.opts))
	for id := range p.opts {
		out[id] = Option{p: p, id: id}
	}
	return out
}

// Commands returns this level's registered command parsers in
// registration order.
func (p *Parser) Commands() []*Parser {
	out := make([]*Parser, 0, len(p.cmdOrder))
	for _, key := range p.cmdOrder {
		out = append(out, p.cmds[key])
	}
	return out
}

// Selected returns the selected item and true, or a zero Option and
// false if nothing in the group was selected.
func (g ChoiceGroup) Selected() (Option, bool) {
	sel := g.p.groups[g.id].selected
	if sel < 0 {
		return Option{}, false
	}
	return Option{p: g.p, id: sel}, true
}

// Value returns the short name of the selected item, falling back to the
// group default when nothing was selected.
func (g ChoiceGroup) Value() string {
	if sel, ok := g.Selected(); ok {
		return string(g.p.opts[sel.id].short)
	}
	return string(g.p.groups[g.id].def)
}

// Count returns how many selections were made during the parse. Later
// selections override earlier ones but still count.
func (g ChoiceGroup) Count() int { return g.p.groups[g.id].count }

// Keyword returns this level's command keyword (the program name for the
// root parser).
func (p *Parser) Keyword() string { return p.keyword }

// Active returns the command the parse delegated to, or the parser
// itself when no command keyword matched. Follow Active repeatedly (or
// compare against registered handles) to walk a nested delegation.
func (p *Parser) Active() *Parser {
	if p.active == nil {
		return p
	}
	return p.active
}

// Loose returns the tokens that resolved to nothing at this level.
func (p *Parser) Loose() []string { return p.loose }

// LooseAt returns the i-th loose parameter, or "" if out of range.
func (p *Parser) LooseAt(i int) string {
	if i < 0 || i >= len(p.loose) {
		return ""
	}
	return p.loose[i]
}

// Rest returns the tokens after a "--" terminator, verbatim.
func (p *Parser) Rest() []string { return p.rest }

// IsOn looks up a switch by name and reports whether it is on. A single
// character is tried as a short name first, then as a long name. Unknown
// names read as off.
func (p *Parser) IsOn(name string) bool {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) == 1 {
		if id, ok := p.byShort[runes[0]]; ok {
			return p.opts[id].state == StateOn
		}
	}
	if id, ok := p.byLong[strings.ToLower(name)]; ok {
		return p.opts[id].state == StateOn
	}
	return false
}

// Err returns the structured reason behind a false Parse result, walking
// into the active command when delegation occurred. It is nil after a
// successful parse.
func (p *Parser) Err() error {
	if p.err != nil {
		return p.err
	}
	if p.active != nil && p.active != p {
		return p.active.Err()
	}
	return nil
}
