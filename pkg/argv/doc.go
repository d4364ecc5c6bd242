// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argv parses raw command-line tokens against a registry of
// declared switches, value-capturing options, mutually exclusive choice
// groups, and nested commands.
//
// The library is built around a declare-then-query model:
//   - Registries are built up front with builder calls
//   - Parse classifies every token in a single left-to-right pass
//   - Results are read afterwards through per-option and per-parser queries
//
// # Basic Usage
//
//	p := argv.New("cryptool", "Encrypt and decrypt files")
//	verbose := p.Switch('v', "verbose", "Enable verbose output")
//	input := p.Capture('i', "input", "Input file")
//
//	if !p.Parse(os.Args[1:]) {
//	    fmt.Fprintln(os.Stderr, p.Err())
//	    fmt.Fprint(os.Stderr, p.Help())
//	    os.Exit(1)
//	}
//	fmt.Printf("verbose=%v input=%s\n", verbose.On(), input.Value())
//
// # Token Grammar
//
// Switch tokens start with '-', '+', or '/'. Short switches group freely
// ("-abc" sets a, b, and c), long switches use a doubled dash or plus
// ("--name", "++name") or a single slash ("/name"). Values attach with
// '=' or ':' ("-o=file", "--out:file") or follow as separate tokens.
// On/off switches take their state from the sign: '-' turns them off,
// '+' and '/' turn them on. An attached separator with no value
// ("-o:") forces the option off and clears anything it captured.
// A literal "--" stops parsing; the remainder is available via Rest.
// Tokens prefixed with a backslash have it stripped and are never
// treated as switches.
//
// # Commands
//
// Command registers a nested parser with its own independent registry:
//
//	enc := p.Command("encrypt", "Encrypt a file")
//	encIn := enc.Capture('i', "input", "File to encrypt")
//
//	p.Parse([]string{"encrypt", "-i", "secret.txt"})
//	// p.Active() == enc, encIn.Value() == "secret.txt"
//
// A command keyword may appear anywhere in the token stream; tokens before
// it stay at the parent level and every token after it belongs to the
// matched command's own parse.
//
// Parsers are single-use: construct, call Parse exactly once, then query.
package argv
