package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// RunScript executes every line of script in order and writes a transcript to w: the output of each command
// followed by the final tree and info of the file system. Malformed lines do not stop the script, they are reported
// in the transcript and returned together as a single error. An exit line ends the script early.
func (s *Shell) RunScript(script io.Reader, w io.Writer) error {
	var merr *multierror.Error

	sc := newScanner(script)
	lineNo, executed := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if skip(line) {
			continue
		}

		out, err := s.Exec(line)
		if errors.Is(err, ErrExit) {
			break
		}
		if err != nil {
			out = fmt.Sprintf("Error executing '%s': %s", line, out)
			merr = multierror.Append(merr, errors.Wrapf(err, "%s line", humanize.Ordinal(lineNo)))
		}

		executed++
		if _, err := fmt.Fprintln(w, out); err != nil {
			return errors.Wrap(err, "failed to write transcript")
		}
	}

	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "failed to read script")
	}

	tree, _ := s.fs.Tree()
	info, _ := s.fs.Info()
	footer := fmt.Sprintf("\nFinal file system structure:\n%s\nFile system info:\n%s\n", tree, info)
	footer += fmt.Sprintf("%s commands executed.\n", humanize.Comma(int64(executed)))
	if _, err := io.WriteString(w, footer); err != nil {
		return errors.Wrap(err, "failed to write transcript")
	}

	return merr.ErrorOrNil()
}

func (s *Shell) RunScriptFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open script %v", path)
	}
	defer f.Close()

	return s.RunScript(f, w)
}
