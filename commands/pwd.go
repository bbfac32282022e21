package commands

import (
	"fmt"
	"os"
)

// Pwd prints the absolute path of the current working directory.
func Pwd(s *Shell, args []string) Outcome {
	pwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(s.stdout, err)
		return Failure(1)
	}

	fmt.Fprintln(s.stdout, pwd)
	return Success(0)
}

var _ ShellBuiltinFunc = Pwd
