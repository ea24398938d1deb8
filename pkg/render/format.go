package render

import (
	"os"
	"strings"

	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled terminal output
	FormatTerminal
	// FormatText renders the stripped text without any styling
	FormatText
	// FormatXML renders text, spans and runs as an XML document
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve replaces FormatAuto with the detected format for output
func (f Format) Resolve(output *os.File) Format {
	if f == FormatAuto {
		return DetectFormat(output)
	}
	return f
}

// ParseProfile parses a color profile name. The empty string and "auto"
// return ok == false.
func ParseProfile(s string) (termenv.Profile, bool, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, true, nil
	case "256", "ansi256":
		return termenv.ANSI256, true, nil
	case "16", "ansi":
		return termenv.ANSI, true, nil
	case "none", "ascii":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, errors.Newf(errors.ErrInvalidInput, "unknown color profile: %s", s).
			WithDetail("profile", s)
	}
}
