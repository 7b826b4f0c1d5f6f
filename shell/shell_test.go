package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/filesystem"
)

func newTestShell(size int) (*Shell, *filesystem.FileSystem) {
	fs := filesystem.New(size, filesystem.WithLogger(zap.NewNop().Sugar()))
	return New(fs), fs
}

// recorder is a Service that only remembers the arguments it was called with.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) (string, error) {
	r.calls = append(r.calls, call)
	return call, errors.New("operation failed")
}

func (r *recorder) Mkdir(name string) (string, error) { return r.record("mkdir|" + name) }
func (r *recorder) Create(name string, size int) (string, error) {
	return r.record("create|" + name + "|" + strings.Repeat("#", size))
}
func (r *recorder) Delete(name string) (string, error) { return r.record("delete|" + name) }
func (r *recorder) Ls() (string, error) { return r.record("ls") }
func (r *recorder) Cd(name string) (string, error) { return r.record("cd|" + name) }
func (r *recorder) Info() (string, error) { return r.record("info") }
func (r *recorder) Write(path, data string) (string, error) { return r.record("write|" + path + "|" + data) }
func (r *recorder) Read(path string) (string, error) { return r.record("read|" + path) }
func (r *recorder) Tree() (string, error) { return r.record("tree") }
func (r *recorder) Log() (string, error) { return r.record("log") }
func (r *recorder) CurrentPath() string { return "/RAIZ" }

func TestExec_Dispatches_Commands(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	lines := []string{
		"mkdir docs",
		"mkdir  my   docs ",
		"create file1.txt 3",
		"delete old",
		"delete my   docs",
		"ls",
		"cd ..",
		"cd my   docs",
		"info",
		"write /docs/a.txt   Initial   draft content.  ",
		"read docs/a.txt",
		"tree",
		"log",
	}
	for _, l := range lines {
		_, err := s.Exec(l)
		require.NoError(t, err, l)
	}

	assert.Equal(t, []string{
		"mkdir|docs",
		"mkdir|my   docs",
		"create|file1.txt|###",
		"delete|old",
		"delete|my   docs",
		"ls",
		"cd|..",
		"cd|my   docs",
		"info",
		"write|/docs/a.txt|Initial   draft content.",
		"read|docs/a.txt",
		"tree",
		"log",
	}, rec.calls)
}

func TestExec_Malformed_Lines(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	cases := map[string]error{
		"mkdir":        ErrUsage,
		"create f":     ErrUsage,
		"create f ten": ErrUsage,
		"write /a.txt": ErrUsage,
		"read":         ErrUsage,
		"cd":           ErrUsage,
		"delete":       ErrUsage,
		"ls -la":       ErrUnknownCommand,
		"format":       ErrUnknownCommand,
		"MKDIR docs":   ErrUnknownCommand,
		"exit now":     ErrUnknownCommand,
		"mkdirdocs":    ErrUnknownCommand,
	}

	for line, expected := range cases {
		_, err := s.Exec(line)
		assert.ErrorIs(t, err, expected, line)
	}
	assert.Empty(t, rec.calls)

	out, err := s.Exec("format c:")
	assert.Equal(t, "Unknown command.", out)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExec_Exit_Blank_And_Comment(t *testing.T) {
	s := New(&recorder{})

	_, err := s.Exec("exit")
	assert.ErrorIs(t, err, ErrExit)

	out, err := s.Exec("   ")
	assert.NoError(t, err)
	assert.Empty(t, out)

	out, err = s.Exec("# mkdir docs")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestExec_Operation_Failure_Is_Output_Not_Error(t *testing.T) {
	s, _ := newTestShell(10)

	out, err := s.Exec("cd ..")
	assert.NoError(t, err)
	assert.Equal(t, "Error: Already at root directory.", out)
}

func TestRun(t *testing.T) {
	s, fs := newTestShell(100)

	in := strings.NewReader("mkdir docs\n\ncd docs\ncreate a.txt 5\nwrite docs/a.txt hello world\nread /docs/a.txt\nbogus\nexit\nmkdir never\n")
	out := &bytes.Buffer{}
	require.NoError(t, s.Run(in, out))

	expected := "/RAIZ> Directory 'docs' created successfully.\n" +
		"/RAIZ> /RAIZ> Navigated to /RAIZ/docs.\n" +
		"/RAIZ/docs> File 'a.txt' created successfully.\n" +
		"/RAIZ/docs> Data written to file 'a.txt'.\n" +
		"/RAIZ/docs> Contents of file 'a.txt': hello world\n" +
		"/RAIZ/docs> Unknown command.\n" +
		"/RAIZ/docs> "
	assert.Equal(t, expected, out.String())

	// malformed lines and exit do not reach the service
	assert.Len(t, fs.Records(), 5)
}

func TestRun_Accepts_Lines_Longer_Than_Scanner_Default(t *testing.T) {
	s, fs := newTestShell(100)

	payload := strings.Repeat("x", 70*1024)
	in := strings.NewReader("create big 1\nwrite big " + payload + "\nmkdir after\n")
	out := &bytes.Buffer{}
	require.NoError(t, s.Run(in, out))

	assert.Contains(t, out.String(), "Data written to file 'big'.")
	assert.Contains(t, out.String(), "Directory 'after' created successfully.")

	res, err := fs.Read("big")
	require.NoError(t, err)
	assert.Equal(t, "Contents of file 'big': "+payload, res)
}

func TestRun_Ends_At_EOF(t *testing.T) {
	s, fs := newTestShell(100)

	out := &bytes.Buffer{}
	require.NoError(t, s.Run(strings.NewReader("mkdir docs"), out))
	assert.Equal(t, "/RAIZ> Directory 'docs' created successfully.\n/RAIZ> ", out.String())
	assert.Len(t, fs.Records(), 1)
}

func TestRunScript(t *testing.T) {
	s, _ := newTestShell(500)

	script := strings.Join([]string{
		"mkdir docs",
		"create file1.txt 10",
		"cd docs",
		"create report1.txt 20",
		"create huge 1000",
		"create bad",
		"cd ..",
	}, "\n")

	out := &bytes.Buffer{}
	err := s.RunScript(strings.NewReader(script), out)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)
	assert.ErrorIs(t, merr.Errors[0], ErrUsage)
	assert.Contains(t, merr.Errors[0].Error(), "6th line")

	expected := "Directory 'docs' created successfully.\n" +
		"File 'file1.txt' created successfully.\n" +
		"Navigated to /RAIZ/docs.\n" +
		"File 'report1.txt' created successfully.\n" +
		"Error: Insufficient space.\n" +
		"Error executing 'create bad': Usage: create <name> <size>\n" +
		"Navigated to /RAIZ.\n" +
		"\nFinal file system structure:\n" +
		"[DIR] docs\n" +
		"    [FILE] report1.txt (20 blocks)\n" +
		"[FILE] file1.txt (10 blocks)\n" +
		"\nFile system info:\n" +
		"Disk size: 500, Free space: 470, Current path: /RAIZ.\n" +
		"7 commands executed.\n"
	assert.Equal(t, expected, out.String())
}

func TestRunScript_Long_Line_Keeps_Footer(t *testing.T) {
	s, fs := newTestShell(10)

	payload := strings.Repeat("y", 100*1024)
	out := &bytes.Buffer{}
	require.NoError(t, s.RunScript(strings.NewReader("create big 2\nwrite /big "+payload+"\n"), out))

	assert.Contains(t, out.String(), "Data written to file 'big'.\n")
	assert.True(t, strings.HasSuffix(out.String(), "2 commands executed.\n"))
	// create, write, then the tree and info of the footer
	assert.Len(t, fs.Records(), 4)
}

func TestRunScriptFile(t *testing.T) {
	s, fs := newTestShell(100)

	path := filepath.Join(t.TempDir(), uuid.New().String()+".txt")
	require.NoError(t, os.WriteFile(path, []byte("# setup\nmkdir docs\nexit\nmkdir never\n"), 0644))

	out := &bytes.Buffer{}
	require.NoError(t, s.RunScriptFile(path, out))
	assert.True(t, strings.HasPrefix(out.String(), "Directory 'docs' created successfully.\n"))

	// mkdir, then the tree and info of the footer
	assert.Len(t, fs.Records(), 3)

	assert.Error(t, s.RunScriptFile(filepath.Join(t.TempDir(), "missing.txt"), out))
}

func TestExec_Names_With_Spaces(t *testing.T) {
	s, fs := newTestShell(10)

	out, err := s.Exec("mkdir my docs")
	require.NoError(t, err)
	assert.Equal(t, "Directory 'my docs' created successfully.", out)

	out, err = s.Exec("cd my docs")
	require.NoError(t, err)
	assert.Equal(t, "Navigated to /RAIZ/my docs.", out)

	_, err = s.Exec("cd ..")
	require.NoError(t, err)
	out, err = s.Exec("delete my docs")
	require.NoError(t, err)
	assert.Equal(t, "'my docs' deleted successfully.", out)
	assert.Equal(t, 10, fs.FreeSpace())
}

func TestRemainder(t *testing.T) {
	assert.Equal(t, "a  b", remainder("write  p   a  b", 2))
	assert.Equal(t, "", remainder("write p", 2))
	assert.Equal(t, "p x", remainder("write p x", 1))
}
