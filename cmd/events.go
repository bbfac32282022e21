package cmd

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/minsh/core/config"
	"github.com/josephlewis42/minsh/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the session event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report [EVENT_LOG]",
	Short: "Show a report of events.",
	Long:  `Summarize an event log. The log defaults to $` + config.EnvEventLog + `.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			configuration, err := loadConfig()
			if err != nil {
				return err
			}
			path = configuration.EventLog
		}
		if path == "" {
			return errors.New("no event log given and " + config.EnvEventLog + " is unset")
		}

		fd, err := afero.NewOsFs().Open(path)
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
