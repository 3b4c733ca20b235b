package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout

	boldColor    = color.New(color.Bold)
	dimColor     = color.New(color.Faint)
	successColor = color.New(color.Bold, color.FgGreen)
	errorColor   = color.New(color.Bold, color.FgRed)
	infoColor    = color.New(color.Bold, color.FgBlue)
	warnColor    = color.New(color.Bold, color.FgYellow)
)

func init() {
	SetOutput(os.Stdout)
}

// SetOutput redirects all terminal output to w. Colors stay on only when w
// is a terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	color.NoColor = !isTerminal(w)
}

// DisableColor turns colors off regardless of the output.
func DisableColor() {
	mu.Lock()
	defer mu.Unlock()
	color.NoColor = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, args...)
}

// Success prints a green success message.
func Success(msg string) {
	printf("%s %s\n", successColor.Sprint("✓"), msg)
}

// Error prints a red error message.
func Error(msg string) {
	printf("%s %s\n", errorColor.Sprint("✗"), msg)
}

// Info prints a blue info message.
func Info(msg string) {
	printf("%s %s\n", infoColor.Sprint("i"), msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	printf("%s %s\n", warnColor.Sprint("!"), msg)
}

// Header prints a bold header.
func Header(msg string) {
	printf("\n%s\n", boldColor.Sprint(msg))
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	printf("  %s %s\n", dimColor.Sprint(label+":"), value)
}

// Console reports progress through the package-level printers.
type Console struct{}

func (Console) Info(msg string)    { Info(msg) }
func (Console) Warning(msg string) { Warning(msg) }
func (Console) Success(msg string) { Success(msg) }
