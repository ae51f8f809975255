package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal behind out. If it cannot be determined,
// it returns a default value of 80.
func termWidth(out io.Writer) int {
	f, ok := out.(*os.File)
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
func printSeparatorWithTitle(out io.Writer, title string) {
	width := termWidth(out)
	preTitle := "--- "
	titleWidth := len(title) + len(preTitle)
	separatorWidth := width - titleWidth - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	fmt.Fprintf(out, "%s%s %s\n", preTitle, title, strings.Repeat(SEPARATOR_CHAR, separatorWidth))
}

// Prints a separator line.
func printSeparator(out io.Writer) {
	fmt.Fprintf(out, "%s\n", strings.Repeat(SEPARATOR_CHAR, termWidth(out)))
}
