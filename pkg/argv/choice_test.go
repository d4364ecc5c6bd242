// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import "testing"

func TestChoice_DefaultWhenNothingSelected(t *testing.T) {
	p := New("test", "")
	g := p.Choice('u', "Mode")
	g.Item('a', "archive", "")
	g.Item('u', "update", "")

	if !p.Parse(nil) {
		t.Fatalf("Parse() = false, want true")
	}
	if got := g.Value(); got != "u" {
		t.Errorf("Value() = %q, want %q", got, "u")
	}
	if _, ok := g.Selected(); ok {
		t.Error("Selected() reported a selection, want none")
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, want 0", g.Count())
	}
}

func TestChoice_LastSelectionWins(t *testing.T) {
	p := New("test", "")
	g := p.Choice('u', "Mode")
	a := g.Item('a', "archive", "")
	u := g.Item('u', "update", "")

	if !p.Parse([]string{"-a", "-u"}) {
		t.Fatalf("Parse() = false, want true (err: %v)", p.Err())
	}
	if got := g.Value(); got != "u" {
		t.Errorf("Value() = %q, want %q", got, "u")
	}
	if a.State() != StateOff {
		t.Errorf("a.State() = %v, want off", a.State())
	}
	if u.State() != StateOn {
		t.Errorf("u.State() = %v, want on", u.State())
	}
	if g.Count() != 2 {
		t.Errorf("Count() = %d, want 2", g.Count())
	}
	sel, ok := g.Selected()
	if !ok {
		t.Fatal("Selected() = none, want the update item")
	}
	if sel != u {
		t.Errorf("Selected() = %v, want the update item", sel)
	}
}

func TestChoice_SelectionByLongName(t *testing.T) {
	p := New("test", "")
	g := p.Choice('u', "Mode")
	a := g.Item('a', "archive", "")
	g.Item('u', "update", "")

	if !p.Parse([]string{"--archive"}) {
		t.Fatalf("Parse() = false, want true (err: %v)", p.Err())
	}
	if !a.On() {
		t.Errorf("a.On() = false, want true")
	}
	if got := g.Value(); got != "a" {
		t.Errorf("Value() = %q, want %q", got, "a")
	}
}

func TestChoice_GroupedWithOtherSwitches(t *testing.T) {
	p := New("test", "")
	v := p.Switch('v', "verbose", "")
	g := p.Choice('u', "Mode")
	a := g.Item('a', "archive", "")
	u := g.Item('u', "update", "")

	if !p.Parse([]string{"-vau"}) {
		t.Fatalf("Parse() = false, want true (err: %v)", p.Err())
	}
	if !v.On() {
		t.Errorf("v.On() = false, want true")
	}
	if a.State() != StateOff || u.State() != StateOn {
		t.Errorf("states = %v/%v, want off/on", a.State(), u.State())
	}
}

func TestChoice_IndependentGroups(t *testing.T) {
	p := New("test", "")
	mode := p.Choice('u', "Mode")
	a := mode.Item('a', "archive", "")
	mode.Item('u', "update", "")
	level := p.Choice('n', "Level")
	f := level.Item('f', "fast", "")
	level.Item('n', "normal", "")

	if !p.Parse([]string{"-a", "-f"}) {
		t.Fatalf("Parse() = false, want true (err: %v)", p.Err())
	}
	// Selecting in one group never touches the other.
	if !a.On() || !f.On() {
		t.Errorf("states = %v/%v, want on/on", a.State(), f.State())
	}
	if mode.Value() != "a" || level.Value() != "f" {
		t.Errorf("Values = %q/%q, want a/f", mode.Value(), level.Value())
	}
}
