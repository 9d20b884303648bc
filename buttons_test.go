// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"reflect"
	"testing"
)

func TestParseButtonLayout(t *testing.T) {
	tests := []struct {
		in   string
		want ButtonLayout
	}{
		{
			in:   "appicon:minimize,maximize,close",
			want: ButtonLayout{Right: []ButtonKind{ButtonMinimize, ButtonMaximize, ButtonClose}},
		},
		{
			in: "close,maximize:minimize",
			want: ButtonLayout{
				Left:  []ButtonKind{ButtonClose, ButtonMaximize},
				Right: []ButtonKind{ButtonMinimize},
			},
		},
		{
			in:   "close:",
			want: ButtonLayout{Left: []ButtonKind{ButtonClose}},
		},
		{
			// Close is forced onto the right when the setting omits it.
			in:   "icon:minimize",
			want: ButtonLayout{Right: []ButtonKind{ButtonMinimize, ButtonClose}},
		},
		{
			// No separator means a right-side-only list.
			in:   "minimize,close",
			want: ButtonLayout{Right: []ButtonKind{ButtonMinimize, ButtonClose}},
		},
	}
	for _, tc := range tests {
		got := ParseButtonLayout(tc.in)
		if !layoutEqual(got, tc.want) {
			t.Errorf("ParseButtonLayout(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func layoutEqual(a, b ButtonLayout) bool {
	return kindsEqual(a.Left, b.Left) && kindsEqual(a.Right, b.Right)
}

func kindsEqual(a, b []ButtonKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestButtonsArrange(t *testing.T) {
	var bs Buttons
	caps := CapMaximize | CapMinimize
	bs.arrange(202, 1, DefaultButtonLayout(), caps)

	if len(bs.left) != 0 {
		t.Fatalf("left group has %d buttons", len(bs.left))
	}
	if len(bs.right) != 3 {
		t.Fatalf("right group has %d buttons, want 3", len(bs.right))
	}

	// Right to left: close outermost, then maximize, then minimize.
	want := []Button{
		{Kind: ButtonClose, X: 202 - 1 - 5 - 24, Size: 24},
		{Kind: ButtonMaximize, X: 202 - 1 - 5 - 24 - 13 - 24, Size: 24},
		{Kind: ButtonMinimize, X: 202 - 1 - 5 - 24 - 13 - 24 - 13 - 24, Size: 24},
	}
	if !reflect.DeepEqual(bs.right, want) {
		t.Errorf("right group = %+v, want %+v", bs.right, want)
	}

	for _, b := range bs.right {
		kind, ok := bs.find(b.CenterX(), b.CenterY())
		if !ok || kind != b.Kind {
			t.Errorf("find(center of %v) = %v, %v", b.Kind, kind, ok)
		}
	}
	if _, ok := bs.find(1, 1); ok {
		t.Error("find(1, 1) hit a button")
	}
}

func TestButtonsArrangeCapabilityFiltering(t *testing.T) {
	var bs Buttons
	bs.arrange(202, 1, DefaultButtonLayout(), 0)

	if len(bs.right) != 1 || bs.right[0].Kind != ButtonClose {
		t.Fatalf("right group = %+v, want close only", bs.right)
	}
	// Close takes the outermost slot left by the missing buttons.
	if got := bs.right[0].X; got != 202-1-5-24 {
		t.Errorf("close X = %v", got)
	}
}

func TestButtonsGroupBounds(t *testing.T) {
	var bs Buttons
	layout := ButtonLayout{
		Left:  []ButtonKind{ButtonMinimize},
		Right: []ButtonKind{ButtonClose},
	}
	bs.arrange(202, 1, layout, CapMinimize)

	if got, want := bs.leftEnd(1), 1.0+5+24; got != want {
		t.Errorf("leftEnd = %v, want %v", got, want)
	}
	if got, want := bs.rightStart(202, 1), 202.0-1-5-24; got != want {
		t.Errorf("rightStart = %v, want %v", got, want)
	}

	// Empty groups collapse to the window margins.
	var empty Buttons
	empty.arrange(202, 1, ButtonLayout{}, 0)
	if got := empty.leftEnd(1); got != 1 {
		t.Errorf("empty leftEnd = %v", got)
	}
	if got := empty.rightStart(202, 1); got != 201 {
		t.Errorf("empty rightStart = %v", got)
	}
}

func TestButtonGeometry(t *testing.T) {
	b := Button{Kind: ButtonClose, X: 100, Size: 24}
	if got := b.Y(); got != 5.5 {
		t.Errorf("Y() = %v, want 5.5", got)
	}
	if got := b.CenterX(); got != 112 {
		t.Errorf("CenterX() = %v, want 112", got)
	}
	if got := b.CenterY(); got != 17.5 {
		t.Errorf("CenterY() = %v, want 17.5", got)
	}
	if !b.contains(100, 5.5) || !b.contains(123.9, 29.4) {
		t.Error("contains() rejected interior points")
	}
	if b.contains(124, 17) || b.contains(112, 29.5) {
		t.Error("contains() accepted exterior points")
	}
}
