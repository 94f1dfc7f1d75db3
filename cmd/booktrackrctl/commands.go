package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Astemirdum/booktrackr/booktrackr/app"
)

var (
	exportOut  string
	importFile string

	listOpts app.ListOptions
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection as a JSON array",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, adm *app.Admin) error {
			data, err := adm.Export(ctx)
			if err != nil {
				return err
			}
			if exportOut == "" || exportOut == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return os.WriteFile(exportOut, append(data, '\n'), 0o644)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the collection with a JSON array of books",
	Long: `Replace the whole collection with the books read from --file (or stdin).
A payload that is not a JSON array of book objects is rejected and the
stored collection is left unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), importFile)
		if err != nil {
			return err
		}
		return withAdmin(cmd, func(ctx context.Context, adm *app.Admin) error {
			n, err := adm.Import(ctx, raw)
			if err != nil {
				return fmt.Errorf("import rejected: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d books\n", n)
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print status counts, the ratings histogram and genre counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, adm *app.Admin) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(adm.Stats(ctx))
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, adm *app.Admin) error {
			view, err := adm.List(ctx, listOpts)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSTATUS\tRATING\tPAGES")
			for _, c := range view.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Author, c.Status, c.Stars, c.PagesLabel)
			}
			if err = w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d matching\n", view.Page, view.TotalPages, view.TotalElements)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Input file (default: stdin)")

	listCmd.Flags().StringVarP(&listOpts.Query, "query", "q", "", "Search text")
	listCmd.Flags().StringVar(&listOpts.Status, "status", "", "Status filter: To Read, Reading, Finished")
	listCmd.Flags().StringVar(&listOpts.Sort, "sort", "", "Sort key: "+strings.Join(app.SortKeys(), ", "))
	listCmd.Flags().IntVar(&listOpts.Page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listOpts.Size, "size", 0, "Page size (default: PAGE_SIZE)")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
