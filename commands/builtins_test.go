package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuiltinShell() (*Shell, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewShell(ShellConfig{Stdout: out, Launcher: &fakeLauncher{}}), out
}

func TestDefaultRegistry(t *testing.T) {
	for _, b := range DefaultRegistry().All() {
		t.Run(b.Name, func(t *testing.T) {
			assert.NotNil(t, b.Handler)
			assert.NotEmpty(t, b.Description)

			found, ok := DefaultRegistry().Lookup(b.Name)
			assert.True(t, ok)
			assert.Equal(t, b.Name, found.Name)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range []string{"CD", "c", "cd ", "", "ls"} {
		_, ok := r.Lookup(name)
		assert.False(t, ok, "lookup %q", name)
	}
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := DefaultRegistry()

	all := r.All()
	all[0].Name = "changed"

	_, ok := r.Lookup("cd")
	assert.True(t, ok)
}

func TestCd(t *testing.T) {
	home := t.TempDir()
	other := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]struct {
		args    []string
		wantDir string
	}{
		"no-args-goes-home":   {nil, home},
		"one-arg":             {[]string{other}, other},
		"extra-args-ignored":  {[]string{other, home, "/"}, other},
		"expanded-home-token": {[]string{home}, home},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			chdir(t, t.TempDir())
			s, out := newBuiltinShell()

			outcome := Cd(s, tc.args)

			assert.Equal(t, Success(0), outcome)
			assert.Empty(t, out.String())

			wd, err := os.Getwd()
			require.NoError(t, err)
			want, err := filepath.EvalSymlinks(tc.wantDir)
			require.NoError(t, err)
			got, err := filepath.EvalSymlinks(wd)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCd_Failures(t *testing.T) {
	start := chdir(t, t.TempDir())
	missing := filepath.Join(start, "does-not-exist")

	t.Run("nonexistent", func(t *testing.T) {
		s, out := newBuiltinShell()

		outcome := Cd(s, []string{missing})

		assert.Equal(t, Failure(1), outcome)
		assert.Contains(t, out.String(), "no such file or directory")
		assert.Contains(t, out.String(), missing)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, start, wd)
	})

	t.Run("home-unset", func(t *testing.T) {
		t.Setenv("HOME", "")
		require.NoError(t, os.Unsetenv("HOME"))
		s, out := newBuiltinShell()

		outcome := Cd(s, nil)

		assert.Equal(t, Failure(1), outcome)
		assert.Equal(t, "cd: HOME not set\n", out.String())
	})
}

func TestPwd(t *testing.T) {
	wd := chdir(t, t.TempDir())
	s, out := newBuiltinShell()

	outcome := Pwd(s, []string{"ignored"})

	assert.Equal(t, Success(0), outcome)
	assert.Equal(t, wd+"\n", out.String())
}

func TestPwd_NoWorkingDirectory(t *testing.T) {
	chdirRemoved(t)
	s, out := newBuiltinShell()

	outcome := Pwd(s, nil)

	assert.Equal(t, Failure(1), outcome)
	assert.NotEmpty(t, out.String())
}

func TestExit(t *testing.T) {
	s, out := newBuiltinShell()

	assert.Equal(t, Terminate(), Exit(s, nil))
	assert.Equal(t, Terminate(), Exit(s, []string{"1", "now"}))
	assert.Empty(t, out.String())
}

func TestHelp(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	s, out := newBuiltinShell()

	outcome := Help(s, []string{"ignored"})

	assert.Equal(t, Success(0), outcome)
	g.Assert(t, "help", out.Bytes())
}

func TestHelp_ListsRegistryInOrder(t *testing.T) {
	noop := ShellBuiltinFunc(func(*Shell, []string) Outcome { return Success(0) })
	registry := NewRegistry(
		Builtin{Name: "zeta", Description: "last letter", Handler: noop},
		Builtin{Name: "help", Description: "print a help message", Handler: ShellBuiltinFunc(Help)},
		Builtin{Name: "alpha", Description: "first letter", Handler: noop},
	)
	out := &bytes.Buffer{}
	s := NewShell(ShellConfig{Stdout: out, Builtins: registry})

	assert.Equal(t, Success(0), s.Execute("help"))

	lines := strings.Split(out.String(), "\n")
	var listed []string
	for _, line := range lines {
		if name, _, ok := strings.Cut(line, " - "); ok {
			listed = append(listed, strings.TrimSpace(name))
		}
	}
	assert.Equal(t, []string{"zeta", "help", "alpha"}, listed)
}
