// Package ansi holds the ANSI SGR escape constants used by the result
// printer. Styled output goes through these so the sequences live in one
// place.
package ansi

// SGR style and color codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)
