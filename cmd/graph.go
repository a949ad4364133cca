package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"unosolo.dev/pkg/unosolo/internal/domain"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

var graphAllFlag bool

// graphCmd represents the graph command.
var graphCmd = newGraphCmd()

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the include graph",
		Long:  graphLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := viper.GetString(topIncludeConfigKey)
			all, _ := cmd.Flags().GetBool(allFlagName)

			if entry == "" && !all {
				return errMissingTopInclude
			}

			cmd.SilenceUsage = true

			return workflow.Graph(context.Background(), domain.GraphArgs{
				Paths: parsePaths(viper.GetStringSlice(pathsConfigKey)),
				Entry: m.Path(entry),
				All:   all,
			})
		},
	}

	cmd.Flags().BoolVarP(&graphAllFlag, allFlagName, "a", false, "trace every catalogued header, not only those reachable from the top-level include")

	return cmd
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
