package msglog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TimeLayout formats message timestamps.
const TimeLayout = "15:04:05"

// Line is one rendered log row.
type Line struct {
	Text  string
	Color tcell.Color
}

// Tail renders the newest entries that fit in height rows.
func (l *Log) Tail(height int) []Line {
	return Lines(l.messages, height)
}

// Lines renders the last height messages. Each row fades toward black by
// 1 - age/height where age 0 is the newest rendered row.
func Lines(msgs []*Message, height int) []Line {
	if height <= 0 || len(msgs) == 0 {
		return nil
	}
	if len(msgs) > height {
		msgs = msgs[len(msgs)-height:]
	}

	lines := make([]Line, len(msgs))
	for i, msg := range msgs {
		age := len(msgs) - 1 - i
		factor := 1 - float64(age)/float64(height)
		lines[i] = Line{
			Text:  "[" + msg.Time.Format(TimeLayout) + "] " + msg.FullText(),
			Color: Fade(msg.Color, factor),
		}
	}
	return lines
}

// Fade scales each RGB channel by factor, clamped to [0, 1].
func Fade(c tcell.Color, factor float64) tcell.Color {
	factor = max(0, min(factor, 1))
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	black := colorful.Color{}
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	fr, fg, fb := src.BlendRgb(black, 1-factor).RGB255()
	return tcell.NewRGBColor(int32(fr), int32(fg), int32(fb))
}
