package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

// SimpleUI implements UI on top of a cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	tty bool
}

// NewUI creates the UI for cmd. When tty is false tables are printed as
// plain tab separated rows so they can be piped.
func NewUI(cmd *cobra.Command, tty bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, tty: tty}
}

// NewSimpleUI creates a SimpleUI that renders for a terminal.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return NewUI(cmd, true)
}

// DisplayAmalgamation writes the amalgamated header to the primary stream.
func (s *SimpleUI) DisplayAmalgamation(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(s.cmd.OutOrStdout(), text)

	return err
}

// DisplayOutputWritten notes on the error stream that the header went to a file.
func (s *SimpleUI) DisplayOutputWritten(ctx context.Context, path m.Path, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(s.cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", path, size)

	return err
}

// DisplayCatalog prints the header catalog.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, roots []m.LibraryRoot, entries []m.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !s.tty {
		for _, entry := range entries {
			s.printf("%s\t%s\t%s\n", entry.Key, entry.Root, entry.Path)
		}

		return nil
	}

	s.printf("\n%s", renderCatalogTable(roots, entries))

	return nil
}

func renderCatalogTable(roots []m.LibraryRoot, entries []m.CatalogEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Header", "Root", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		table.Append([]string{entry.Key, string(entry.Root), string(entry.Path)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Headers %d", len(entries)),
		fmt.Sprintf("Roots %d", len(roots)),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayGraph prints the include graph as YAML.
func (s *SimpleUI) DisplayGraph(ctx context.Context, graph m.IncludeGraph) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(graph); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
