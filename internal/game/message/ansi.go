package message

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightBlack = "\033[90m"
	BrightRed   = "\033[91m"
	BrightBlue  = "\033[94m"
	BrightWhite = "\033[97m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
// An empty color leaves text untouched.
//
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}
