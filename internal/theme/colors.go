package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a theme color: #RRGGBB, #RGB (the # may be left out)
// or rgb(r, g, b). Anything else is tcell.ColorDefault.
func ParseColor(value string) tcell.Color {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "rgb(") {
		var r, g, b int
		if _, err := fmt.Sscanf(value, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return tcell.ColorDefault
		}
		for _, v := range []int{r, g, b} {
			if v < 0 || v > 255 {
				return tcell.ColorDefault
			}
		}
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}

	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return tcell.ColorDefault
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return FromColorful(c)
}

// FromColorful converts a go-colorful color to tcell.Color
func FromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
