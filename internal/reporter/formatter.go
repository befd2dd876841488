package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal behind w. If w is not a terminal, it
// returns a default value of 80.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Prints a separator line with a title.
// The title is more or less left aligned.
//
// Example:
//
//	--- MyTitle ---------------------------------------
func printSeparatorWithTitle(w io.Writer, title string) error {
	width := termWidth(w)
	preTitle := "--- "
	titleWidth := len(title) + len(preTitle)
	separatorWidth := width - titleWidth - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	_, err := fmt.Fprintf(w, "%s%s %s\n", preTitle, title, strings.Repeat(SEPARATOR_CHAR, separatorWidth))
	return err
}

// Prints a separator line.
func printSeparator(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", strings.Repeat(SEPARATOR_CHAR, termWidth(w)))
	return err
}
