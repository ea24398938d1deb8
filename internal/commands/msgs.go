package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render text with XML-like style tags"
	MsgRenderShort     = "Resolve tags and print styled text"
	MsgStripShort      = "Print text with all tags removed"
	MsgSpansShort      = "List the tagged spans of a text"
	MsgCheckShort      = "Check markup and tag registration"
	MsgStylesheetShort = "Inspect stylesheets"
	MsgSheetShowShort  = "Print the effective stylesheet"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"

	// Status messages
	MsgCheckOK           = "%d tag(s), balanced and styled"
	MsgCheckMalformed    = "malformed markup: %s"
	MsgCheckUnregistered = "no style for tag(s): %s"
	MsgNoSpans           = "No tags found."

	// Version output
	MsgVersionFormat = "texty version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrReadInput   = "failed to read input"
	MsgErrNoInput     = "no text given: pass it as arguments, with --file, or on stdin"
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrStylesheet  = "failed to load stylesheet"
	MsgErrBadSet      = "--set expects key=value, got %q"
	MsgErrCheckFailed = "check failed"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default: texty/config.toml in the XDG config directories)"
	MsgFlagStylesheet = "Stylesheet merged over the built-in one (YAML or TOML)"
	MsgFlagFormat     = "Output format: auto, term, text or xml"
	MsgFlagStrict     = "Fail on tags with no registered style"
	MsgFlagWidth      = "Wrap width in cells, 0 for no wrapping"
	MsgFlagProfile    = "Color profile: auto, truecolor, 256, 16 or none"
	MsgFlagFile       = "Read the text from a file ('-' for stdin)"
	MsgFlagSet        = "Template value as key=value; enables {{.key}} expansion"
	MsgFlagLenient    = "Print malformed input unchanged instead of failing"
	MsgFlagSheetFmt   = "Output format: yaml or toml"
	MsgFlagDefault    = "Show the built-in stylesheet as written"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimSpace(msgRenderExampleRaw)

	//go:embed msgs/spans-long.txt
	msgSpansLongRaw string
	MsgSpansLong    = strings.TrimSpace(msgSpansLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimSpace(msgCheckExampleRaw)
)
