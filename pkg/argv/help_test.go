// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"strings"
	"testing"
)

func TestHelp_Sections(t *testing.T) {
	p := New("cryptool", "Encrypt and decrypt files")
	p.Switch('v', "verbose", "Enable verbose output")
	p.OnOff('m', "mute", StateOff, "Suppress output")
	p.CaptureN('i', "input", 1, 1, "Input file")
	g := p.Choice('u', "Mode")
	g.Item('a', "archive", "Archive mode")
	g.Item('u', "update", "Update mode")
	p.Command("encrypt", "Encrypt a file")
	p.Command("decrypt", "Decrypt a file")

	help := p.Help()

	for _, want := range []string{
		"cryptool - Encrypt and decrypt files",
		"USAGE:",
		"COMMANDS:",
		"encrypt",
		"Encrypt a file",
		"decrypt",
		"-v, --verbose",
		"Enable verbose output",
		"+m/-m, --mute",
		"-i, --input VALUE",
		"MODE (one of, default: u):",
		"-a, --archive",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("Help() missing %q\n%s", want, help)
		}
	}
}

func TestHelp_CommandsInRegistrationOrder(t *testing.T) {
	p := New("app", "")
	p.Command("zeta", "")
	p.Command("alpha", "")

	help := p.Help()
	if strings.Index(help, "zeta") > strings.Index(help, "alpha") {
		t.Errorf("Help() lists commands out of registration order\n%s", help)
	}
}

func TestHelp_ReadOnly(t *testing.T) {
	p := New("app", "")
	v := p.Switch('v', "verbose", "")

	_ = p.Help()
	if !p.Parse([]string{"-v"}) {
		t.Fatalf("Parse() = false, want true")
	}
	_ = p.Help()
	if !v.On() {
		t.Error("Help() disturbed parse state")
	}
}
