package commands

import (
	"fmt"
	"os"

	"github.com/josephlewis42/minsh/core/shell"
)

// Version is printed by the help builtin.
var Version = "0.1.0"

// ShellBuiltin is a command run inside the interpreter's own process.
type ShellBuiltin interface {
	Main(s *Shell, args []string) Outcome
}

// ShellBuiltinFunc adapts a function to a ShellBuiltin.
type ShellBuiltinFunc func(s *Shell, args []string) Outcome

func (f ShellBuiltinFunc) Main(s *Shell, args []string) Outcome {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Builtin is an entry in the builtin table.
type Builtin struct {
	Name        string
	Description string
	Handler     ShellBuiltin
}

// Registry is a fixed, ordered table of builtins. It is never modified after
// construction.
type Registry struct {
	entries []Builtin
}

// NewRegistry creates a registry holding entries in the given order.
func NewRegistry(entries ...Builtin) *Registry {
	return &Registry{entries: append([]Builtin(nil), entries...)}
}

// DefaultRegistry returns the interpreter's builtins.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Builtin{Name: "cd", Description: "change working directory", Handler: ShellBuiltinFunc(Cd)},
		Builtin{Name: "exit", Description: "exit the shell", Handler: ShellBuiltinFunc(Exit)},
		Builtin{Name: "help", Description: "print a help message", Handler: ShellBuiltinFunc(Help)},
		Builtin{Name: "pwd", Description: "print working directory", Handler: ShellBuiltinFunc(Pwd)},
	)
}

// Lookup finds the builtin with exactly the given name.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	for _, b := range r.entries {
		if b.Name == name {
			return b, true
		}
	}
	return Builtin{}, false
}

// All returns a copy of the table in registry order.
func (r *Registry) All() []Builtin {
	return append([]Builtin(nil), r.entries...)
}

// Cd is the cd shell builtin. Without arguments it changes to $HOME; only
// the first argument is used, any others are ignored.
func Cd(s *Shell, args []string) Outcome {
	var target string
	if len(args) == 0 {
		home, ok := os.LookupEnv(shell.EnvHome)
		if !ok {
			fmt.Fprintln(s.stdout, "cd: HOME not set")
			return Failure(1)
		}
		target = home
	} else {
		target = args[0]
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintln(s.stdout, err)
		return Failure(1)
	}
	return Success(0)
}

// Exit quits the shell.
func Exit(s *Shell, args []string) Outcome {
	return Terminate()
}

// Help prints the banner and every registered builtin.
func Help(s *Shell, args []string) Outcome {
	w := s.stdout
	fmt.Fprintln(w, s.colors.Sprint(ColorBold, fmt.Sprintf("minsh version %s", Version)))
	fmt.Fprintln(w, "Enter 'help' to view this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "These shell commands are defined internally:")

	for _, b := range s.Builtins().All() {
		fmt.Fprintf(w, "%-20s - %s\n", b.Name, b.Description)
	}

	return Success(0)
}
