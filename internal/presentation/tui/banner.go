package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"             _                     _ _    ", "#818cf8"},
	{"   ___ _   _| |__   _____      ____ _| | | __", "#a78bfa"},
	{"  / __| | | | '_ \\ / _ \\ \\ /\\ / / _` | | |/ /", "#c084fc"},
	{" | (__| |_| | |_) |  __/\\ V  V / (_| | |   < ", "#e879f9"},
	{"  \\___|\\__,_|_.__/ \\___| \\_/\\_/ \\__,_|_|_|\\_\\", "#f472b6"},
}

// PrintBanner writes the cubewalk banner, colored when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
