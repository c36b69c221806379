package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{`                                  _     _ _   `, "#818cf8"},
	{` _ __ ___   ___ _ __ _ __ ___   __ _(_) __| | _(_) |_ `, "#a78bfa"},
	{`| '_ ' _ \ / _ \ '__| '_ ' _ \ / _' | |/ _' |/ / | __|`, "#c084fc"},
	{`| | | | | |  __/ |  | | | | | | (_| | | (_| |   <| | |_ `, "#e879f9"},
	{`|_| |_| |_|\___|_|  |_| |_| |_|\__,_|_|\__,_|_|\_\_|\__|`, "#f472b6"},
}

// PrintBanner writes the mermaidkit banner followed by version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).ColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
