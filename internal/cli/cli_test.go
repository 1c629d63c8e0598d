package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swipetodo/internal/format"
)

// isolate keeps tests away from the user's config and environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("SWIPETODO_CONFIG", "")
	t.Setenv("SWIPETODO_FORMAT", "")
	t.Setenv("SWIPETODO_OUTPUT_FORMAT", "")
	return dir
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

type envelope struct {
	Data []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"data"`
	Query string `json:"query"`
	Total int    `json:"total"`
}

func mustTasks(t *testing.T, args ...string) envelope {
	t.Helper()
	stdout, stderr, err := runCLI(t, append([]string{"tasks"}, args...))
	if err != nil {
		t.Fatalf("tasks %v: %v\nstderr:\n%s", args, err, stderr)
	}
	var env envelope
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\nstdout:\n%s", err, stdout)
	}
	return env
}

func TestTasks_SeedView(t *testing.T) {
	isolate(t)

	env := mustTasks(t)
	if env.Total != 3 || len(env.Data) != 3 {
		t.Fatalf("expected three seed tasks; got %+v", env)
	}
	for i, d := range env.Data {
		if d.ID != i+1 {
			t.Fatalf("expected ids 1..3; got %+v", env.Data)
		}
	}
}

func TestTasks_AddDeleteQuery(t *testing.T) {
	isolate(t)

	env := mustTasks(t, "--add", "Buy milk", "--add", "   ", "--delete", "2", "--query", "MILK")
	if env.Total != 3 {
		t.Fatalf("expected 3 tasks after add/delete; got %d", env.Total)
	}
	if len(env.Data) != 1 || env.Data[0].ID != 4 || env.Data[0].Title != "Buy milk" {
		t.Fatalf("unexpected filtered view: %+v", env.Data)
	}
	if env.Query != "MILK" {
		t.Fatalf("expected query echoed verbatim; got %q", env.Query)
	}
}

func TestTasks_SeedFromConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[seed]\ntasks = [\"Water plants\", \"Call mom\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := mustTasks(t, "--config", path)
	if len(env.Data) != 2 || env.Data[1].Title != "Call mom" {
		t.Fatalf("expected seed from config; got %+v", env.Data)
	}
}

func TestTasks_TextAndEDN(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"--format", "text", "tasks", "--query", "3"})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if got := string(out); got != "3\tTask 3\n" {
		t.Fatalf("text output: %q", got)
	}

	out, _, err = runCLI(t, []string{"--format", "edn", "tasks", "--query", "3"})
	if err != nil {
		t.Fatalf("edn: %v", err)
	}
	if got, want := string(out), `{:data [{:id 3 :title "Task 3"}] :query "3" :total 3}`+"\n"; got != want {
		t.Fatalf("edn output:\n got: %q\nwant: %q", got, want)
	}
}

func TestInvalidFormatIsRejected(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, []string{"--format", "yaml", "tasks"})
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !strings.Contains(string(stderr), "yaml") {
		t.Fatalf("expected error on stderr; got %q", stderr)
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		t.Fatalf("expected error to be marked as reported; got %T", err)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	var env struct {
		Data struct {
			Topics []string `json:"topics"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if strings.Join(env.Data.Topics, ",") != "keys,swipe" {
		t.Fatalf("topics: %v", env.Data.Topics)
	}

	out, _, err = runCLI(t, []string{"docs", "swipe", "--raw"})
	if err != nil {
		t.Fatalf("docs swipe: %v", err)
	}
	if !strings.HasPrefix(string(out), "#") {
		t.Fatalf("expected raw markdown; got %q", out)
	}

	_, stderr, err := runCLI(t, []string{"docs", "nope"})
	if err == nil || !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("expected unknown topic error; err=%v stderr=%q", err, stderr)
	}
}

func TestConfigCommand_ReflectsFlags(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"--no-mouse", "--glyphs", "ascii", "config"})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	var env struct {
		Data struct {
			UI struct {
				Mouse  bool   `json:"mouse"`
				Glyphs string `json:"glyphs"`
			} `json:"ui"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if env.Data.UI.Mouse || env.Data.UI.Glyphs != "ascii" {
		t.Fatalf("unexpected ui config: %+v", env.Data.UI)
	}
}

func TestLogFileReceivesRecords(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "swipetodo.log")

	if _, _, err := runCLI(t, []string{"--log-file", logPath, "--log-level", "debug", "tasks", "--add", "x"}); err != nil {
		t.Fatalf("tasks: %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "task added") || !strings.Contains(string(b), "session=") {
		t.Fatalf("unexpected log contents:\n%s", b)
	}
}

func TestFormatFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SWIPETODO_FORMAT", "edn")

	out, _, err := runCLI(t, []string{"tasks", "--query", "3"})
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if got, want := string(out), `{:data [{:id 3 :title "Task 3"}] :query "3" :total 3}`+"\n"; got != want {
		t.Fatalf("expected edn from SWIPETODO_FORMAT:\n got: %q\nwant: %q", got, want)
	}
}

func TestLoggerClosedWhenCommandFails(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "swipetodo.log")

	app := &App{}
	cmd := newRootCmd(app)
	var errBuf bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errBuf)
	cmd.SetArgs([]string{"--log-file", logPath, "docs", "nope"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
	if app.log != nil {
		t.Fatalf("expected logger to be closed after a failing command")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestReportError(t *testing.T) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetErr(&buf)

	ReportError(cmd, reportedError{err: format.ErrUnknownFormat})
	if buf.Len() != 0 {
		t.Fatalf("reported errors must not print twice; got %q", buf.String())
	}
	ReportError(cmd, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Fatalf("got %q", buf.String())
	}
}
