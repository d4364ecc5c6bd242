// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argv loads a parser schema, parses the remaining command line
// against it, and prints the resulting state of every level. It exists
// to inspect and debug schema files:
//
//	argv cryptool.toml -- -v encrypt -i secret.txt
//
// Tokens after the schema path are the sequence under test; a leading
// "--" is allowed and skipped so switch-shaped tokens read naturally.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/argv/pkg/argfile"
	"github.com/yeetrun/argv/pkg/argv"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <schema.toml|schema.yaml> [-- tokens...]", os.Args[0])
	}
	schema := os.Args[1]
	tokens := os.Args[2:]
	if len(tokens) > 0 && tokens[0] == "--" {
		tokens = tokens[1:]
	}

	p, err := argfile.Load(schema)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	ok := p.Parse(tokens)
	printResult(p, ok)
	if !ok {
		os.Exit(1)
	}
}

func printResult(root *argv.Parser, ok bool) {
	if ok {
		fmt.Println(color.GreenString("parse ok"))
	} else {
		fmt.Println(color.RedString("parse failed: %v", root.Err()))
	}

	for p := root; ; {
		printLevel(p)
		next := p.Active()
		if next == p {
			break
		}
		p = next
	}
}

func printLevel(p *argv.Parser) {
	fmt.Println(separator())
	fmt.Printf("level %s\n", color.CyanString(p.Keyword()))

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, opt := range p.Options() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", optionLabel(opt), stateLabel(opt.State()), strings.Join(opt.Values(), " "))
	}
	if active := p.Active(); active != p {
		fmt.Fprintf(w, "  command\t%s\n", active.Keyword())
	}
	if loose := p.Loose(); len(loose) > 0 {
		fmt.Fprintf(w, "  loose\t%s\n", strings.Join(loose, " "))
	}
	if rest := p.Rest(); len(rest) > 0 {
		fmt.Fprintf(w, "  rest\t%s\n", strings.Join(rest, " "))
	}
	w.Flush()
}

func optionLabel(o argv.Option) string {
	var forms []string
	if o.ShortName() != argv.NoShort {
		forms = append(forms, "-"+string(o.ShortName()))
	}
	if o.LongName() != "" {
		forms = append(forms, "--"+o.LongName())
	}
	return strings.Join(forms, ", ")
}

func stateLabel(s argv.TriState) string {
	switch s {
	case argv.StateOn:
		return color.GreenString("on")
	case argv.StateOff:
		return color.YellowString("off")
	}
	return color.New(color.Faint).Sprint("undefined")
}

func separator() string {
	cols := 60
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if c, _, err := term.GetSize(fd); err == nil && c > 0 {
			cols = c
		}
	}
	return strings.Repeat("-", cols)
}
