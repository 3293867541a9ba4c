package scene

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

// Skyline replaces the house scene with a city silhouette for places
// that have one.
type Skyline struct {
	art []string
}

var skylines = map[string][]string{
	"london": {
		"                                  |            ",
		"        ___                      /_\\    __     ",
		"   __  |   |   _____    ___     |   |  |  |__  ",
		"  |  |_|   |__|     |__|   |__  | O |__|      | ",
		"  |                            ||   |         | ",
		"__|____________________________||___|_________|_",
	},
	"new york": {
		"        |                                    ",
		"       /_\\      _      __       _    __      ",
		"  __  |   | __ | | _  |  | _   | |  |  |  _  ",
		" |  |_|   ||  || || | |  || |__| |__|  |_| | ",
		" |                                         | ",
		"_|_________________________________________|_",
	},
	"paris": {
		"            A            ",
		"           /_\\           ",
		"          /   \\    __    ",
		"   __    /     \\  |  |__ ",
		"  |  |__/_______\\_|     |",
		"__|______/     \\________|",
	},
	"tokyo": {
		"          /\\          _        ",
		"      _  /  \\   __   | |  _    ",
		"     | |/----\\ |  |_ | | | |__ ",
		"  ___| |......| |   || |_|    |",
		" |     |......|     ||        |",
		"_|_____|______|_____||________|",
	},
	"sydney": {
		"                 _   _          ",
		"      __     _  / \\ / \\  _      ",
		"  _  |  |   / \\/   v   \\/ \\  __ ",
		" | |_|  |__/               \\|  |",
		" |                             |",
		"_|_____________________________|",
	},
	"dubai": {
		"              |              ",
		"              |       _      ",
		"       _     /|\\     | |  _  ",
		"  __  | |   / | \\  __| | | | ",
		" |  |_| |__|  |  ||    |_| | ",
		"_|____________|____________|_",
	},
	"san francisco": {
		"    /\\                       ",
		"   /  \\   _    __       _    ",
		"  / /\\ \\ | |  |  |  _  | |__ ",
		" / /  \\ \\| |__|  |_| |_|    |",
		"|_|    |_|                  |",
		"____________________________|",
	},
	"rome": {
		"        ___________          ",
		"       / _ _ _ _ _ \\    __   ",
		"  __  | | | | | | | |  |  |_ ",
		" |  |_| |_|_|_|_| | |__|    |",
		" |    |           |         |",
		"_|____|___________|_________|",
	},
}

var skylineAliases = map[string]string{
	"new york city": "new york",
	"nyc":           "new york",
	"manhattan":     "new york",
	"sf":            "san francisco",
	"roma":          "rome",
}

// ResolveSkyline returns the silhouette for a city name, if one exists.
func ResolveSkyline(city string) (*Skyline, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if canon, ok := skylineAliases[key]; ok {
		key = canon
	}
	art, ok := skylines[key]
	if !ok {
		return nil, false
	}
	return &Skyline{art: art}, true
}

func (s *Skyline) Width() int {
	w := 0
	for _, line := range s.art {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

func (s *Skyline) Height() int { return len(s.art) }

func (s *Skyline) Paint(buf *render.Buffer, x, y int, day bool) {
	color := tcell.ColorWhite
	if !day {
		color = tcell.ColorGray
	}
	for i, line := range s.art {
		buf.SetText(x, y+i, line, color)
	}
}
