package shell

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/common"
)

var log = logging.Logger("shell")

var ErrExit = errors.New("exit")
var ErrUnknownCommand = errors.New("unknown command")
var ErrUsage = errors.New("invalid arguments")

// MaxLineSize is the longest command line Run and RunScript accept.
const MaxLineSize = math.MaxInt32

const initialLineSize = 64 * 1024

// Service is the set of operations the shell turns command lines into.
type Service interface {
	Mkdir(name string) (string, error)
	Create(name string, size int) (string, error)
	Delete(name string) (string, error)
	Ls() (string, error)
	Cd(name string) (string, error)
	Info() (string, error)
	Write(path, data string) (string, error)
	Read(path string) (string, error)
	Tree() (string, error)
	Log() (string, error)
	CurrentPath() string
}

type Shell struct {
	fs Service
	l  *zap.SugaredLogger
}

func New(fs Service) *Shell {
	return &Shell{
		fs: fs,
		l:  &log.SugaredLogger,
	}
}

func (s *Shell) Prompt() string {
	return s.fs.CurrentPath() + "> "
}

// Exec runs a single command line and returns what should be printed for it. The returned error is only set when
// the line could not be turned into an operation, or ErrExit when the line asks to end the session. Failures of the
// operation itself are reported in the output, not as an error.
func (s *Shell) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if skip(line) {
		return "", nil
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	s.l.Debugw("exec", "cmd", cmd, "args", args)

	switch cmd {
	case "mkdir":
		if len(args) == 0 {
			return usage("mkdir <name>")
		}
		return result(s.fs.Mkdir(remainder(line, 1)))
	case "create":
		if len(args) != 2 {
			return usage("create <name> <size>")
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return usage("create <name> <size>")
		}
		return result(s.fs.Create(args[0], size))
	case "delete":
		if len(args) == 0 {
			return usage("delete <name>")
		}
		return result(s.fs.Delete(remainder(line, 1)))
	case "cd":
		if len(args) == 0 {
			return usage("cd <name> | cd " + common.ParentMarker)
		}
		return result(s.fs.Cd(remainder(line, 1)))
	case "write":
		if len(args) < 2 {
			return usage("write <path> <data>")
		}
		return result(s.fs.Write(args[0], remainder(line, 2)))
	case "read":
		if len(args) != 1 {
			return usage("read <path>")
		}
		return result(s.fs.Read(args[0]))
	case "exit":
		if len(args) == 0 {
			return "", ErrExit
		}
	default:
		if len(args) == 0 && common.OneOf(cmd, "ls", "info", "tree", "log") {
			return result(s.noArgs(cmd))
		}
	}

	return "Unknown command.", ErrUnknownCommand
}

// Run reads commands from r until it is exhausted or an exit command is read, writing a prompt before each command
// and the output of each command to w.
func (s *Shell) Run(r io.Reader, w io.Writer) error {
	sc := newScanner(r)
	for {
		if _, err := fmt.Fprint(w, s.Prompt()); err != nil {
			return errors.Wrap(err, "failed to write prompt")
		}

		if !sc.Scan() {
			break
		}

		line := sc.Text()
		if skip(strings.TrimSpace(line)) {
			continue
		}

		out, err := s.Exec(line)
		if errors.Is(err, ErrExit) {
			return nil
		}

		if _, err := fmt.Fprintln(w, out); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	return errors.Wrap(sc.Err(), "failed to read commands")
}

func (s *Shell) noArgs(cmd string) (string, error) {
	switch cmd {
	case "ls":
		return s.fs.Ls()
	case "info":
		return s.fs.Info()
	case "tree":
		return s.fs.Tree()
	default:
		return s.fs.Log()
	}
}

// newScanner returns a line scanner accepting lines up to MaxLineSize.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineSize), MaxLineSize)
	return sc
}

// skip tells whether a trimmed line carries no command. Lines starting with # are comments.
func skip(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// remainder returns what is left of line after its first n whitespace separated fields, leading whitespace removed.
// Whitespace inside the remainder is kept as is.
func remainder(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[idx:], unicode.IsSpace)
	}

	return rest
}

// result drops the error of an operation, its failure is already part of the output.
func result(out string, _ error) (string, error) {
	return out, nil
}

func usage(u string) (string, error) {
	return "Usage: " + u, ErrUsage
}
