package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/minsh/commands"
	"github.com/josephlewis42/minsh/core/config"
	"github.com/josephlewis42/minsh/core/logger"
	"github.com/josephlewis42/minsh/core/signals"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), os.Getenv)
}

// rootCmd runs the interactive session when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "A minimal interactive command interpreter",
	Long: `minsh reads a line, runs the builtin or program it names, and repeats.

There is no quoting, no pipelines, no redirection and no job control. A "~"
anywhere in a line is replaced by $HOME.`,
	Args:    cobra.NoArgs,
	Version: commands.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		diag := log.New(cmd.ErrOrStderr(), "minsh: ", 0)

		if err := signals.IgnoreInteractive(); err != nil {
			return fmt.Errorf("couldn't configure interactive signals: %w", err)
		}

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		eventLog, err := configuration.OpenEventLog()
		if err != nil {
			diag.Printf("event log disabled: %v", err)
			eventLog = nopCloser{io.Discard}
		}
		defer eventLog.Close()

		stdinIsTerminal := term.IsTerminal(int(os.Stdin.Fd()))
		stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))

		var reader commands.LineReader
		if stdinIsTerminal && stdoutIsTerminal {
			reader, err = commands.NewTerminalReader(os.Stdin, os.Stdout, os.Stderr)
			if err != nil {
				return err
			}
		} else {
			reader = commands.NewBufferedReader(os.Stdin, os.Stdout)
		}
		defer reader.Close()

		shell := commands.NewShell(commands.ShellConfig{
			Reader:   reader,
			Launcher: &commands.ExecLauncher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
			Stdout:   os.Stdout,
			Colors:   commands.NewColorPrinter(configuration.Color, stdoutIsTerminal),
			Events:   logger.NewJSONLinesLogger(eventLog).NewSession(),
		})
		shell.Run()

		return nil
	},
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
