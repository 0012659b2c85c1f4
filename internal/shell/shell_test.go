package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShell struct {
	*Shell
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestShell(t *testing.T, opts Options) *testShell {
	t.Helper()
	out, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	opts.Stdout = out
	opts.Stderr = errBuf
	return &testShell{Shell: New(opts), out: out, err: errBuf}
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, Success, ResultOf(nil))
	assert.Equal(t, Usage, ResultOf(Usagef("too many parameters")))
	assert.Equal(t, Usage, ResultOf(reportedError{err: UsageError{}}))
	assert.Equal(t, Failure, ResultOf(errors.New("boom")))
	assert.Equal(t, Success, ResultOf(ExitRequested{}))

	assert.Equal(t, 0, Success.ExitCode())
	assert.Equal(t, 1, Failure.ExitCode())
	assert.Equal(t, 2, Usage.ExitCode())
}

func TestExecuteRunsCommandsInOrder(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), `echo one; echo "two words"`)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo words\n", sh.out.String())
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "ecoh hi")
	require.Error(t, err)
	assert.Equal(t, Failure, ResultOf(err))
	assert.Contains(t, sh.err.String(), "unknown command 'ecoh'")
	assert.Contains(t, sh.err.String(), "did you mean 'echo'?")
}

func TestExecuteReturnsLastResult(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "nope; echo ok")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", sh.out.String())
}

func TestExecuteSyntaxErrorIsUsage(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), `echo "unterminated`)
	assert.Equal(t, Usage, ResultOf(err))
	assert.Contains(t, sh.err.String(), "syntax error")
	assert.Empty(t, sh.out.String())
}

func TestUsageErrorPrintsUsage(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "setenv")
	assert.Equal(t, Usage, ResultOf(err))
	assert.Contains(t, sh.err.String(), "error: not enough parameters")
	assert.Contains(t, sh.err.String(), "Usage:\nsetenv name value ...")
}

func TestSetenvPrintenvRun(t *testing.T) {
	sh := newTestShell(t, Options{Env: map[string]string{"greeting": "hello"}})
	ctx := context.Background()

	require.NoError(t, sh.Execute(ctx, `setenv boot_linux echo booting ${greeting}`))
	assert.Equal(t, "echo booting hello", sh.Getenv("boot_linux"))

	require.NoError(t, sh.Execute(ctx, "run boot_linux"))
	assert.Equal(t, "booting hello\n", sh.out.String())

	sh.out.Reset()
	require.NoError(t, sh.Execute(ctx, "printenv greeting"))
	assert.Equal(t, "greeting=hello\n", sh.out.String())

	require.NoError(t, sh.Execute(ctx, "setenv greeting"))
	_, ok := sh.LookupEnv("greeting")
	assert.False(t, ok)

	err := sh.Execute(ctx, "printenv greeting")
	assert.Equal(t, Failure, ResultOf(err))
}

func TestPrintenvAllSorted(t *testing.T) {
	sh := newTestShell(t, Options{Env: map[string]string{"b": "2", "a": "1"}})
	require.NoError(t, sh.Execute(context.Background(), "printenv"))
	assert.Equal(t, "a=1\nb=2\n\nEnvironment size: 2\n", sh.out.String())
}

func TestSetenvRejectsBadName(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "setenv 9lives x")
	assert.Equal(t, Usage, ResultOf(err))
}

func TestRunRecursionIsBounded(t *testing.T) {
	sh := newTestShell(t, Options{Env: map[string]string{"loop": "run loop"}})
	err := sh.Execute(context.Background(), "run loop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting deeper than")
	assert.Equal(t, 1, strings.Count(sh.err.String(), "nesting deeper than"))
}

func TestRunMissingVariable(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "run nothing")
	assert.Equal(t, Failure, ResultOf(err))
}

func TestResetStopsExecution(t *testing.T) {
	sh := newTestShell(t, Options{})
	err := sh.Execute(context.Background(), "echo a; reset; echo b")
	var exit ExitRequested
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, "a\nresetting ...\n", sh.out.String())
}

func TestResetInsideRunPropagates(t *testing.T) {
	sh := newTestShell(t, Options{Env: map[string]string{"r": "reset"}})
	err := sh.RunScript(context.Background(), strings.NewReader("run r\necho after\n"))
	var exit ExitRequested
	require.ErrorAs(t, err, &exit)
	assert.NotContains(t, sh.out.String(), "after")
}

func TestEchoNoNewline(t *testing.T) {
	sh := newTestShell(t, Options{})
	require.NoError(t, sh.Execute(context.Background(), "echo -n a b"))
	assert.Equal(t, "a b", sh.out.String())
}

func TestClsWritesEraseSequence(t *testing.T) {
	sh := newTestShell(t, Options{})
	require.NoError(t, sh.Execute(context.Background(), "cls"))
	assert.Equal(t, "\x1b[2J\x1b[H", sh.out.String())
}

func TestSleep(t *testing.T) {
	sh := newTestShell(t, Options{})
	require.NoError(t, sh.Execute(context.Background(), "sleep 0.01"))
	assert.Equal(t, Usage, ResultOf(sh.Execute(context.Background(), "sleep soon")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := sh.Execute(ctx, "sleep 5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHelpListsCommands(t *testing.T) {
	sh := newTestShell(t, Options{})
	sh.Register(Command{Name: "menu", Short: "boot menu", Usage: "show"})
	require.NoError(t, sh.Execute(context.Background(), "help"))
	assert.Contains(t, sh.out.String(), "menu     - boot menu\n")
	assert.NotContains(t, sh.out.String(), "\nexec ")
	_, ok := sh.Lookup("exec")
	assert.False(t, ok)

	sh.out.Reset()
	require.NoError(t, sh.Execute(context.Background(), "help menu"))
	assert.Contains(t, sh.out.String(), "Usage:\nmenu show\n")
}

func TestExecRequiresOptIn(t *testing.T) {
	sh := newTestShell(t, Options{})
	_, ok := sh.Lookup("exec")
	assert.False(t, ok)

	sh = newTestShell(t, Options{AllowExec: true, Env: map[string]string{"who": "board"}})
	require.NoError(t, sh.Execute(context.Background(), `exec sh -c 'printf "%s" "$who"'`))
	assert.Equal(t, "board", sh.out.String())
}

func TestRunScriptReturnsLastLine(t *testing.T) {
	sh := newTestShell(t, Options{})
	script := "# boot script\nnope\n\necho done\n"
	require.NoError(t, sh.RunScript(context.Background(), strings.NewReader(script)))
	assert.Equal(t, "done\n", sh.out.String())

	err := sh.RunScript(context.Background(), strings.NewReader("echo x\nnope\n"))
	assert.Equal(t, Failure, ResultOf(err))
}

func TestInteractivePromptsUntilEOF(t *testing.T) {
	sh := newTestShell(t, Options{Stdin: strings.NewReader("echo hi\n"), Prompt: "=> "})
	require.NoError(t, sh.Interactive(context.Background()))
	assert.Equal(t, "=> hi\n=> \n", sh.out.String())
}

func TestInteractiveStopsOnExit(t *testing.T) {
	sh := newTestShell(t, Options{Stdin: strings.NewReader("exit\necho never\n"), Prompt: "> "})
	err := sh.Interactive(context.Background())
	var exit ExitRequested
	require.ErrorAs(t, err, &exit)
	assert.NotContains(t, sh.out.String(), "never")
}

func TestSuggest(t *testing.T) {
	names := []string{"echo", "menu", "printenv", "setenv"}
	assert.Equal(t, " (did you mean 'menu'?)", Suggest("mneu", names))
	assert.Equal(t, " (did you mean 'printenv'?)", Suggest("print", names))
	assert.Equal(t, "", Suggest("zzzzzz", names))
}
