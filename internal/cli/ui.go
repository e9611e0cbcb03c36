package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal palette, one color per kind of output.
var (
	ruleColor   = color.New(color.FgCyan)
	titleColor  = color.New(color.FgYellow)
	hintColor   = color.New(color.FgBlue)
	faintColor  = color.New(color.Faint)
	promptColor = color.New(color.FgGreen)
	okColor     = color.New(color.FgGreen)
	badColor    = color.New(color.FgRed)
	noteColor   = color.New(color.FgMagenta)
)

const ruleWidth = 70

// clearScreen resets the terminal between menu screens.
func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// header prints the boxed screen title.
func header(title string) {
	rule := strings.Repeat("═", ruleWidth)
	ruleColor.Println(rule)
	pad := (ruleWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	titleColor.Println(strings.Repeat(" ", pad) + title)
	ruleColor.Println(rule)
}

// readLine reads one trimmed line. io.EOF propagates so callers can
// save and exit cleanly on a closed stdin.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt prints a colored prompt then reads a line.
func prompt(r *bufio.Reader, msg string) (string, error) {
	promptColor.Print(msg)
	return readLine(r)
}

// pressEnter pauses until the user acknowledges.
func pressEnter(r *bufio.Reader) error {
	faintColor.Print("[enter]")
	_, err := readLine(r)
	if err == io.EOF {
		return err
	}
	return nil
}

// flames renders a flame streak as repeated fire marks.
func flames(n int) string {
	return strings.Repeat("🔥", n)
}
