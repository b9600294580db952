package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Upload(_ context.Context, a []string) error    { return f.record("upload", a) }
func (f *fakeExec) UploadURL(_ context.Context, a []string) error { return f.record("uploadurl", a) }
func (f *fakeExec) List(_ context.Context, a []string) error      { return f.record("list", a) }
func (f *fakeExec) Show(_ context.Context, a []string) error      { return f.record("show", a) }
func (f *fakeExec) Move(_ context.Context, a []string) error      { return f.record("move", a) }
func (f *fakeExec) Reorder(_ context.Context, a []string) error   { return f.record("reorder", a) }
func (f *fakeExec) Delete(_ context.Context, a []string) error    { return f.record("delete", a) }
func (f *fakeExec) Clear(_ context.Context, a []string) error     { return f.record("clear", a) }
func (f *fakeExec) Folders(_ context.Context, a []string) error   { return f.record("folders", a) }
func (f *fakeExec) Mkdir(_ context.Context, a []string) error     { return f.record("mkdir", a) }
func (f *fakeExec) Rename(_ context.Context, a []string) error    { return f.record("rename", a) }
func (f *fakeExec) Rmdir(_ context.Context, a []string) error     { return f.record("rmdir", a) }
func (f *fakeExec) Select(_ context.Context, a []string) error    { return f.record("select", a) }
func (f *fakeExec) SetID(_ context.Context, a []string) error     { return f.record("setid", a) }
func (f *fakeExec) Size(_ context.Context, a []string) error      { return f.record("size", a) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"upload a.png b.png",
		"uploadurl https://example.com/x.png",
		"",
		"l",
		"list Work",
		"show 1",
		"move 2 Work",
		"reorder 1 3",
		"delete 1",
		"clear",
		"folders",
		"mkdir Work",
		"rename Work Projects",
		"rmdir Projects",
		"select Work",
		"setid",
		"size 300",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(Unclassified)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"upload", "uploadurl", "list", "list", "show", "move", "reorder", "delete",
		"clear", "folders", "mkdir", "rename", "rmdir", "select", "setid", "size",
	}, exec.calls)
	assert.Equal(t, []string{"a.png", "b.png"}, exec.args[0])
	assert.Equal(t, []string{"Work"}, exec.args[3])
	assert.Equal(t, []string{"1", "3"}, exec.args[6])
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{err: &common.DuplicateFolderError{Name: "Work"}}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("mkdir Work\nfoobar\nsize\n")))

	assert.Equal(t, []string{"mkdir", "size"}, exec.calls)
	assert.Contains(t, *lines, `Error: folder "Work" already exists`)
	assert.Contains(t, *lines, "Unknown command: foobar")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("folders")))

	assert.Equal(t, []string{"folders"}, exec.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{usage("show <n>"), "Usage: show <n>"},
		{&common.MissingCredentialError{Action: "upload"}, "Error: client id is not set, cannot upload (use 'setid' first)"},
		{fmt.Errorf("batch: %w", common.ErrNoImages), "No image files found."},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
