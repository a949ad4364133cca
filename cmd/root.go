// Package cmd provides the root command and CLI setup for unosolo.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"unosolo.dev/pkg/unosolo/internal/adapter"
	"unosolo.dev/pkg/unosolo/internal/controller"
	"unosolo.dev/pkg/unosolo/internal/domain"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var cataloger domain.Cataloger
var listener domain.Listener
var workflow domain.Workflow
var ui controller.UI

var pathsFlag []string
var topIncludeFlag string
var verboseFlag bool
var outputFlag string

// errMissingTopInclude is returned when no entry header was given.
var errMissingTopInclude = errors.New("top-level include file is required (--topinclude or config \"topinclude\")")

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	listener = domain.NewLogListener(nil)
	cataloger = domain.NewCataloger(fsAdapter, domain.CatalogOptions{
		Extensions: viper.GetStringSlice(extensionsConfigKey),
		Parallel:   viper.GetInt(parallelConfigKey),
		Listener:   listener,
	})
	workflow = domain.NewWorkflow(
		fsAdapter,
		ui,
		cataloger,
		domain.WithWorkflowListener(listener),
		domain.WithWorkflowBanner(banner()...),
	)
}

const rootLongDescription = `unosolo transforms a C/C++ header-only library into one self-contained
header.

Every header under the include paths is catalogued by its path relative to
the include path it was found in. Starting from the top-level include, each
#include "x" (next to the including file) and #include <x> (through the
catalog) is replaced by the included header's content the first time that
header is met. Includes of headers that no include path provides, such as
standard headers, are kept as they are. The result is printed to stdout.

When several include paths provide the same relative header, the one listed
first wins.`

const listLongDescription = `List every header found under the include paths with the root it was
registered from. Headers shadowed by an earlier include path are not shown.`

const graphLongDescription = `Print the include graph as YAML: for each header, the project headers it
includes, and the order in which headers depend on each other.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unosolo",
		Short: "Amalgamate a header-only library into a single header",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := viper.GetString(topIncludeConfigKey)
			if entry == "" {
				return errMissingTopInclude
			}

			cmd.SilenceUsage = true

			return workflow.Amalgamate(context.Background(), domain.AmalgamateArgs{
				Paths:  parsePaths(viper.GetStringSlice(pathsConfigKey)),
				Entry:  m.Path(entry),
				Output: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringArrayVarP(
			&pathsFlag, pathsFlagName, "p",
			defaultPaths,
			"include paths (library roots), searched in the given order (can be repeated)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pathsFlagName), pathsConfigKey)

	cmd.PersistentFlags().StringVarP(&topIncludeFlag, topIncludeFlagName, "t", "", "top-level include file path (entrypoint)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(topIncludeFlagName), topIncludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "enable verbose mode (diagnostics on stderr)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", "", "write the header to this file instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
