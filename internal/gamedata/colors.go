package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Message and HUD palette.
var (
	ColorWhite               = MustParseHexColor("#FFFFFF")
	ColorBlack               = MustParseHexColor("#000000")
	ColorPlayerAttack        = MustParseHexColor("#E0E0E0")
	ColorEnemyAttack         = MustParseHexColor("#FFC0C0")
	ColorNeedsTarget         = MustParseHexColor("#3FFFFF")
	ColorStatusEffectApplied = MustParseHexColor("#3FFF3F")
	ColorPlayerDie           = MustParseHexColor("#FF3030")
	ColorEnemyDie            = MustParseHexColor("#FFA030")
	ColorInvalid             = MustParseHexColor("#FFFF00")
	ColorImpossible          = MustParseHexColor("#808080")
	ColorWelcomeText         = MustParseHexColor("#20A0FF")
	ColorHealthRecovered     = MustParseHexColor("#00FF00")
	ColorBarText             = MustParseHexColor("#FFFFFF")
	ColorBarFilled           = MustParseHexColor("#006000")
	ColorBarEmpty            = MustParseHexColor("#401010")
	ColorCorpse              = MustParseHexColor("#BF0000")
)

// ParseHexColor converts "#RRGGBB" (the "#" is optional) to a tcell colour.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
