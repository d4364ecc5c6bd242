// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"
	"strings"
)

// Help renders usage text for this parser level from registry metadata.
// It is read-only and may be called before or after Parse. Nested
// command levels render their own help.
func (p *Parser) Help() string {
	var b strings.Builder

	b.WriteString(p.keyword)
	if p.help != "" {
		b.WriteString(" - ")
		b.WriteString(p.help)
	}
	b.WriteString("\n\n")

	b.WriteString("USAGE:\n")
	usage := fmt.Sprintf("    %s [OPTIONS]", p.keyword)
	if len(p.cmdOrder) > 0 {
		usage += " [COMMAND]"
	}
	usage += " [ARGS...]"
	b.WriteString(usage)
	b.WriteString("\n\n")

	if len(p.cmdOrder) > 0 {
		b.WriteString("COMMANDS:\n")
		for _, key := range p.cmdOrder {
			b.WriteString(fmt.Sprintf("    %-12s %s\n", key, p.cmds[key].help))
		}
		b.WriteString("\n")
	}

	var plain []int
	for id := range p.opts {
		if p.opts[id].kind != kindChoice {
			plain = append(plain, id)
		}
	}

	if len(plain) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, id := range plain {
			writeOptionLine(&b, &p.opts[id])
		}
		b.WriteString("\n")
	}

	for gi := range p.groups {
		g := &p.groups[gi]
		if len(g.items) == 0 {
			continue
		}
		label := g.help
		if label == "" {
			label = "CHOICES"
		}
		b.WriteString(fmt.Sprintf("%s (one of, default: %s):\n", strings.ToUpper(label), string(g.def)))
		for _, id := range g.items {
			writeOptionLine(&b, &p.opts[id])
		}
		b.WriteString("\n")
	}

	if len(p.cmdOrder) > 0 {
		b.WriteString(fmt.Sprintf("Run '%s COMMAND' with that command's own options.\n", p.keyword))
	}

	return b.String()
}

func writeOptionLine(b *strings.Builder, o *option) {
	names := optionNames(o)
	if o.help != "" {
		b.WriteString(fmt.Sprintf("%-28s %s", names, o.help))
	} else {
		b.WriteString(names)
	}
	if o.kind == kindOnOff && o.def != StateUndefined {
		b.WriteString(fmt.Sprintf(" (default: %s)", o.def))
	}
	b.WriteString("\n")
}

// optionNames formats the switch forms for one option: short and long
// when both exist, a sign pair for on/off switches, and a VALUE
// placeholder for capturing options.
func optionNames(o *option) string {
	var forms []string
	if o.short != NoShort {
		if o.kind == kindOnOff {
			forms = append(forms, fmt.Sprintf("+%c/-%c", o.short, o.short))
		} else {
			forms = append(forms, "-"+string(o.short))
		}
	}
	if o.long != "" {
		forms = append(forms, "--"+o.long)
	}
	s := "    " + strings.Join(forms, ", ")
	if o.kind == kindCapture {
		s += " VALUE"
		if o.max == Unbounded || o.max > 1 {
			s += "..."
		}
	}
	return s
}
