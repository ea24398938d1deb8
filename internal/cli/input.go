package cli

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/spf13/cobra"
)

// readInput returns the text to work on: the joined arguments, the file
// named by --file, or stdin. One trailing newline is dropped from files
// and stdin.
func readInput(cmd *cobra.Command, args []string, path string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var r io.Reader
	switch path {
	case "":
		if file, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(file) {
			return "", errors.New(errors.ErrInvalidInput, commands.MsgErrNoInput)
		}
		r = cmd.InOrStdin()
	case "-":
		r = cmd.InOrStdin()
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrNotFound, commands.MsgErrReadInput).
				WithDetail("path", path)
		}
		r = bytes.NewReader(data)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, commands.MsgErrReadInput)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
