// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"strings"
	"unicode/utf8"
)

const (
	terminator = "--"
	escapeChar = '\\'
)

func isPrefix(c byte) bool {
	return c == '-' || c == '+' || c == '/'
}

// switchShaped reports whether tok should enter switch dispatch. A
// doubled dash or plus with a body is long form; a doubled slash is not
// a switch at all, so path-like tokens ("//host/share") stay loose.
func switchShaped(tok string) bool {
	if len(tok) < 2 || !isPrefix(tok[0]) {
		return false
	}
	if tok[1] == tok[0] {
		return (tok[0] == '-' || tok[0] == '+') && len(tok) > 2
	}
	return true
}

// unescape strips one leading escape character so literal values that
// look like switches pass through unambiguously.
func unescape(tok string) string {
	if len(tok) > 1 && tok[0] == escapeChar {
		return tok[1:]
	}
	return tok
}

// splitValue splits a long-form body at the first '=' or ':'. sep
// reports whether an explicit separator was present, which matters even
// when the value is empty.
func splitValue(body string) (name, value string, sep bool) {
	if idx := strings.IndexAny(body, "=:"); idx >= 0 {
		return body[:idx], body[idx+1:], true
	}
	return body, "", false
}

// signState maps a switch prefix to the state it assigns an on/off
// switch: dash turns off, plus and slash turn on.
func signState(sign byte) TriState {
	switch sign {
	case '-':
		return StateOff
	case '+', '/':
		return StateOn
	}
	return StateUndefined
}

// Parse consumes the token sequence and reports whether every
// switch-shaped token resolved. It never panics on input: unknown
// switches are recorded via Err and reduce the result to false.
//
// Parsers are single-use. Calling Parse again on the same instance is
// unsupported; it accumulates on top of the previous results instead of
// resetting them.
func (p *Parser) Parse(args []string) bool {
	p.active = p

	ok := true
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if strings.TrimSpace(tok) == "" {
			continue
		}
		if tok == terminator {
			p.rest = append(p.rest, args[i+1:]...)
			break
		}
		if switchShaped(tok) {
			if !p.applySwitch(tok) {
				ok = false
			}
			continue
		}
		if p.pending >= 0 {
			p.consumeValue(tok)
			continue
		}
		if cmd, found := p.cmds[strings.ToLower(tok)]; found {
			p.active = cmd
			return cmd.Parse(args[i+1:]) && ok
		}
		p.loose = append(p.loose, unescape(tok))
	}
	return ok
}

// applySwitch dispatches one switch-shaped token. Any switch token ends
// the previous option's value accumulation.
func (p *Parser) applySwitch(tok string) bool {
	p.pending = -1
	sign := tok[0]
	if tok[1] == sign {
		return p.applyLong(sign, tok[2:], tok)
	}
	if sign == '/' && len(tok) > 2 {
		return p.applyLong(sign, tok[1:], tok)
	}
	return p.applyShort(sign, tok[1:], tok)
}

// applyShort resolves each letter of a grouped short-switch body. A
// capturing option ends the group: whatever follows its letter is an
// attached value (possibly behind a '=' or ':' separator).
func (p *Parser) applyShort(sign byte, body, tok string) bool {
	for i, r := range body {
		id, found := p.byShort[r]
		if !found {
			p.fail(&UnknownSwitchError{Token: tok, Name: string(r)})
			return false
		}
		o := &p.opts[id]
		switch o.kind {
		case kindSwitch:
			o.state = StateOn
			o.count++
		case kindOnOff:
			o.state = signState(sign)
			o.count++
		case kindChoice:
			p.selectChoice(id)
		case kindCapture:
			rest := body[i+utf8.RuneLen(r):]
			sep := false
			if rest != "" && (rest[0] == '=' || rest[0] == ':') {
				sep = true
				rest = rest[1:]
			}
			p.attachValue(id, rest, sep)
			return true
		}
	}
	return true
}

// applyLong resolves a long-form body against the long-name table.
func (p *Parser) applyLong(sign byte, body, tok string) bool {
	name, value, sep := splitValue(body)
	id, found := p.byLong[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		p.fail(&UnknownSwitchError{Token: tok, Name: name})
		return false
	}
	o := &p.opts[id]
	switch o.kind {
	case kindSwitch:
		o.state = StateOn
		o.count++
	case kindOnOff:
		o.state = signState(sign)
		o.count++
	case kindChoice:
		p.selectChoice(id)
	case kindCapture:
		p.attachValue(id, value, sep)
	}
	return true
}

// attachValue handles the value position of a capturing option within a
// single token. An empty value behind an explicit separator is the
// "turn off and clear" signal, not an error. A bare capture (no value,
// no separator) starts waiting for following tokens.
func (p *Parser) attachValue(id int, value string, sep bool) {
	o := &p.opts[id]
	if strings.TrimSpace(value) == "" {
		if sep {
			o.state = StateOff
			o.values = nil
			o.count = 0
			return
		}
		if o.max == Unbounded || o.count < o.max {
			p.pending = id
		}
		return
	}
	if o.max != Unbounded && o.count >= o.max {
		p.loose = append(p.loose, value)
		return
	}
	o.values = append(o.values, value)
	o.count++
	o.state = StateOn
	if o.max == Unbounded || o.count < o.max {
		p.pending = id
	}
}

// consumeValue feeds a standalone token to the option awaiting values.
func (p *Parser) consumeValue(tok string) {
	o := &p.opts[p.pending]
	o.values = append(o.values, unescape(tok))
	o.count++
	if o.count >= o.min {
		o.state = StateOn
	}
	if o.max != Unbounded && o.count >= o.max {
		p.pending = -1
	}
}

// selectChoice marks one group item selected and every sibling off.
func (p *Parser) selectChoice(id int) {
	g := &p.groups[p.opts[id].group]
	for _, item := range g.items {
		p.opts[item].state = StateOff
	}
	o := &p.opts[id]
	o.state = StateOn
	o.count++
	g.selected = id
	g.count++
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
