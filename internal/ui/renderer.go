package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/input"
	"github.com/samdwyer/gloomcrawl/internal/msglog"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// HUD layout, relative to the bottom of the map viewport.
const (
	barWidth     = 20
	panelX       = 21
	panelWidth   = 40
	panelHeight  = 5
	menuWidth    = 40
	logFrameSize = 2
)

// Frame is what one render needs from the game.
type Frame struct {
	Map    *world.GameMap
	Player *entity.Entity
	Log    *msglog.Log
	State  input.State
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the HUD and the overlay for the current mode.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	f.Map.Render(r.screen)

	hudY := f.Map.ViewHeight
	r.renderNames(f, panelX, hudY)
	r.renderBar(f.Player.Fighter, 0, hudY+1)
	r.renderMessages(f.Log.Tail(panelHeight), panelX, hudY+1, panelWidth)

	switch f.State.Mode {
	case input.ModeLog:
		r.renderLogBrowser(f)
	case input.ModeUseInventory:
		r.renderInventory(f, "Select an item to use")
	case input.ModeDropInventory:
		r.renderInventory(f, "Select an item to drop")
	case input.ModeTarget:
		r.renderCursor(f.State.Cursor.X, f.State.Cursor.Y)
	}

	r.screen.Show()
}

// renderNames shows what is under the target cursor, or under the mouse
// outside target mode.
func (r *Renderer) renderNames(f Frame, x, y int) {
	at := f.State.Mouse
	if f.State.Mode == input.ModeTarget {
		at = f.State.Cursor
	}
	wx, wy := f.Map.ToWorld(at.X, at.Y)
	r.drawText(x, y, f.Map.NamesAt(wx, wy), tcell.ColorWhite, tcell.ColorBlack)
}

func (r *Renderer) renderBar(fighter *entity.Fighter, x, y int) {
	if fighter == nil {
		return
	}
	filled := 0
	if fighter.MaxHP > 0 {
		filled = fighter.HP * barWidth / fighter.MaxHP
	}
	for i := 0; i < barWidth; i++ {
		bg := gamedata.ColorBarEmpty
		if i < filled {
			bg = gamedata.ColorBarFilled
		}
		r.screen.Draw(x+i, y, ' ', gamedata.ColorBarText, bg)
	}
	label := fmt.Sprintf("HP: %d/%d", fighter.HP, fighter.MaxHP)
	for i, ch := range label {
		bg := gamedata.ColorBarEmpty
		if i < filled {
			bg = gamedata.ColorBarFilled
		}
		r.screen.Draw(x+1+i, y, ch, gamedata.ColorBarText, bg)
	}
}

func (r *Renderer) renderMessages(lines []msglog.Line, x, y, width int) {
	for i, line := range lines {
		r.drawText(x, y+i, truncate(line.Text, width), line.Color, tcell.ColorBlack)
	}
}

// renderLogBrowser frames the history up to and including the cursor.
func (r *Renderer) renderLogBrowser(f Frame) {
	w, h := f.Map.ViewWidth-2*logFrameSize, f.Map.ViewHeight-2*logFrameSize
	x, y := logFrameSize, logFrameSize
	r.drawFrame(x, y, w, h, "Message history")

	msgs := f.Log.Messages()
	end := min(f.State.LogCursor+1, len(msgs))
	r.renderMessages(msglog.Lines(msgs[:end], h-2), x+1, y+1, w-2)
}

func (r *Renderer) renderInventory(f Frame, title string) {
	slots := f.Player.Inventory.Listing()
	h := max(len(slots), 1) + 2

	x := 0
	if px, _ := f.Map.ToView(f.Player.X, f.Player.Y); px <= f.Map.ViewWidth/2 {
		x = max(f.Map.ViewWidth-menuWidth, 0)
	}
	r.drawFrame(x, 0, menuWidth, h, title)

	if len(slots) == 0 {
		r.drawText(x+1, 1, "(Empty)", tcell.ColorWhite, tcell.ColorBlack)
		return
	}
	for i, s := range slots {
		r.drawText(x+1, 1+i, fmt.Sprintf("(%c) %s", s.Letter, s.Name), tcell.ColorWhite, tcell.ColorBlack)
	}
}

// renderCursor draws the target cell in reverse video.
func (r *Renderer) renderCursor(x, y int) {
	ch, style := r.screen.Content(x, y)
	if ch == 0 {
		ch = ' '
	}
	r.screen.SetContent(x, y, ch, style.Reverse(true))
}

func (r *Renderer) drawFrame(x, y, w, h int, title string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i := x; i < x+w; i++ {
		for j := y; j < y+h; j++ {
			ch := ' '
			switch {
			case i == x && j == y:
				ch = tcell.RuneULCorner
			case i == x+w-1 && j == y:
				ch = tcell.RuneURCorner
			case i == x && j == y+h-1:
				ch = tcell.RuneLLCorner
			case i == x+w-1 && j == y+h-1:
				ch = tcell.RuneLRCorner
			case j == y || j == y+h-1:
				ch = tcell.RuneHLine
			case i == x || i == x+w-1:
				ch = tcell.RuneVLine
			}
			r.screen.SetContent(i, j, ch, style)
		}
	}
	if title != "" {
		t := " " + title + " "
		r.drawText(x+(w-len(t))/2, y, t, tcell.ColorBlack, tcell.ColorWhite)
	}
}

func (r *Renderer) drawText(x, y int, text string, fg, bg tcell.Color) {
	i := 0
	for _, ch := range text {
		r.screen.Draw(x+i, y, ch, fg, bg)
		i++
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
