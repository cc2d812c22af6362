package msglog

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func fixedClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)
	return func() time.Time { return t }
}

func TestAddStacksConsecutiveDuplicates(t *testing.T) {
	l := New(WithClock(fixedClock()))
	l.Add("X", tcell.ColorWhite)
	l.Add("X", tcell.ColorWhite)

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	msg := l.Last()
	if msg.Count != 2 {
		t.Errorf("Count = %d, want 2", msg.Count)
	}
	if got := msg.FullText(); got != "X (x2)" {
		t.Errorf("FullText() = %q, want %q", got, "X (x2)")
	}
}

func TestAddDoesNotStackNonConsecutive(t *testing.T) {
	l := New()
	l.Add("X", tcell.ColorWhite)
	l.Add("Y", tcell.ColorWhite)
	l.Add("X", tcell.ColorWhite)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	for i, want := range []string{"X", "Y", "X"} {
		msg := l.Messages()[i]
		if msg.FullText() != want || msg.Count != 1 {
			t.Errorf("Messages()[%d] = %q x%d, want %q x1", i, msg.FullText(), msg.Count, want)
		}
	}
}

func TestStackKeepsFirstTimestamp(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(WithClock(func() time.Time { return now }))
	l.Add("tick", tcell.ColorWhite)
	now = now.Add(time.Minute)
	l.Add("tick", tcell.ColorWhite)

	if got := l.Last().Time.Minute(); got != 0 {
		t.Errorf("Time.Minute() = %d, want 0", got)
	}
}

func TestLinesSelectsNewestAndFades(t *testing.T) {
	l := New(WithClock(fixedClock()))
	white := tcell.NewRGBColor(200, 100, 40)
	for _, text := range []string{"one", "two", "three", "four", "five"} {
		l.Add(text, white)
	}

	lines := l.Tail(4)
	if len(lines) != 4 {
		t.Fatalf("len(Tail(4)) = %d, want 4", len(lines))
	}
	if lines[0].Text != "[09:05:07] two" {
		t.Errorf("oldest line = %q, want %q", lines[0].Text, "[09:05:07] two")
	}
	if lines[3].Text != "[09:05:07] five" {
		t.Errorf("newest line = %q, want %q", lines[3].Text, "[09:05:07] five")
	}

	// Newest keeps full colour, oldest rendered is scaled by 1 - 3/4.
	if r, g, b := lines[3].Color.RGB(); r != 200 || g != 100 || b != 40 {
		t.Errorf("newest colour = (%d,%d,%d), want (200,100,40)", r, g, b)
	}
	if r, g, b := lines[0].Color.RGB(); r != 50 || g != 25 || b != 10 {
		t.Errorf("oldest colour = (%d,%d,%d), want (50,25,10)", r, g, b)
	}
}

func TestLinesShowsRepeatSuffix(t *testing.T) {
	l := New(WithClock(fixedClock()))
	l.Add("Nothing to attack.", tcell.ColorGray)
	l.Add("Nothing to attack.", tcell.ColorGray)
	l.Add("Nothing to attack.", tcell.ColorGray)

	lines := l.Tail(5)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if want := "[09:05:07] Nothing to attack. (x3)"; lines[0].Text != want {
		t.Errorf("Text = %q, want %q", lines[0].Text, want)
	}
}

func TestLinesEmpty(t *testing.T) {
	if got := Lines(nil, 5); got != nil {
		t.Errorf("Lines(nil) = %v, want nil", got)
	}
	l := New()
	l.Add("x", tcell.ColorWhite)
	if got := l.Tail(0); got != nil {
		t.Errorf("Tail(0) = %v, want nil", got)
	}
}

func TestFadeClamps(t *testing.T) {
	c := tcell.NewRGBColor(255, 255, 255)
	if r, _, _ := Fade(c, 2).RGB(); r != 255 {
		t.Errorf("Fade(2) red = %d, want 255", r)
	}
	if r, g, b := Fade(c, -1).RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("Fade(-1) = (%d,%d,%d), want black", r, g, b)
	}
	if Fade(tcell.ColorDefault, 0.5) != tcell.ColorDefault {
		t.Error("Fade() should leave the default colour alone")
	}
}
