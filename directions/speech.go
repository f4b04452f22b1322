package directions

import (
	"fmt"
	"math"
	"strings"
)

// Speak renders d as one spoken sentence. Steps followed by a walk of at
// least one metre announce it, rounded to whole metres.
func Speak(d Direction) string {
	s := d.Instruction
	if d.Kind != KindDestination {
		if m := math.Round(d.Distance); m >= 1 {
			unit := "metres"
			if m == 1 {
				unit = "metre"
			}
			s += fmt.Sprintf(", then continue for %.0f %s", m, unit)
		}
	}
	return s + "."
}

// Script joins the spoken form of every step into one paragraph.
func Script(dirs []Direction) string {
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = Speak(d)
	}
	return strings.Join(parts, " ")
}
