package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"stockboard/internal/core/version"
	"stockboard/internal/services/api/uploads/domain"
	uploadssvc "stockboard/internal/services/api/uploads/service"
)

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "stockboard",
		Short:         "stock upload command line utility",
		Long:          `Ingest livestock and stock CSV files and inspect their totals`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.shutdown()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.yes, "yes", "y", false, "do not prompt before destructive actions")
	pf.BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")
	pf.StringVar(&a.driver, "blob-driver", "", "blob driver: memory, fs, sqlite, pg or s3 (default STOCKBOARD_BLOB_DRIVER)")
	pf.StringVar(&a.fsRoot, "blob-root", "", "directory for the fs driver (default STOCKBOARD_BLOB_FS_ROOT)")
	pf.StringVar(&a.sqlitePath, "sqlite-path", "", "database file for the sqlite driver (default STOCKBOARD_BLOB_SQLITE_PATH)")

	root.AddCommand(
		cmdIngest(a),
		cmdList(a),
		cmdShow(a),
		cmdRemoveLast(a),
		cmdClear(a),
		cmdReset(a),
		cmdTotals(a),
		cmdCategories(a),
		cmdUnits(a),
		cmdProducts(a),
		cmdSummary(a),
		cmdPalette(a),
		cmdVersion(a),
	)
	return root
}

// needsStore is false for commands that never touch the uploads
func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "palette", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	if p := cmd.Parent(); p != nil && p.Name() == "completion" {
		return false
	}
	return true
}

func ref(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func cmdIngest(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.csv>...",
		Short: "add CSV files as new uploads",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				u, err := ingestFile(a, cmd, path)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				if err := a.print(u.Info(), func() { a.infoTable([]domain.Info{u.Info()}) }); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
}

func ingestFile(a *app, cmd *cobra.Command, path string) (domain.Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Upload{}, err
	}
	defer f.Close()
	return a.svc.Ingest(cmd.Context(), filepath.Base(path), f)
}

func cmdList(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "list uploads in upload order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(list, func() { a.infoTable(list) })
		},
	}
}

func cmdShow(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id|tipo]",
		Short: "print the rows of an upload, the latest by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.svc.Get(cmd.Context(), ref(args))
			if err != nil {
				return err
			}
			return a.print(u, func() { a.rowsTable(u) })
		},
	}
}

func cmdRemoveLast(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-last",
		Short: "remove the most recent upload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svc.RemoveLast(cmd.Context(), a.confirmer())
			if err != nil {
				return err
			}
			return a.print(res, func() { a.mutation(res) })
		},
	}
}

func cmdClear(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "remove every upload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svc.ClearAll(cmd.Context(), a.confirmer())
			if err != nil {
				return err
			}
			return a.print(res, func() { a.mutation(res) })
		},
	}
}

func cmdReset(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "clear uploads and delete the persisted document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svc.HardReset(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(res, func() { a.mutation(res) })
		},
	}
}

func cmdTotals(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "totals [id|tipo]",
		Short: "quantity totals per unit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Totals(cmd.Context(), domain.ViewInput{Upload: ref(args)})
			if err != nil {
				return err
			}
			return a.print(out, func() {
				a.table([]string{"UNIT", "TOTAL"}, len(out), func(i int) []string {
					return []string{out[i].Unit, num(out[i].Total)}
				})
			})
		},
	}
}

func cmdCategories(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [id|tipo]",
		Short: "row count per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Categories(cmd.Context(), domain.ViewInput{Upload: ref(args)})
			if err != nil {
				return err
			}
			return a.print(out, func() {
				if len(out) == 0 {
					fmt.Fprintln(a.out, "this upload has no categories")
					return
				}
				a.table([]string{"CATEGORY", "ROWS"}, len(out), func(i int) []string {
					return []string{out[i].Category, strconv.Itoa(out[i].Count)}
				})
			})
		},
	}
}

func cmdUnits(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [id|tipo]",
		Short: "selectable units of an upload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Units(cmd.Context(), domain.ViewInput{Upload: ref(args)})
			if err != nil {
				return err
			}
			return a.print(out, func() {
				for _, u := range out {
					fmt.Fprintln(a.out, u)
				}
			})
		},
	}
}

func cmdProducts(a *app) *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "products [id|tipo]",
		Short: "quantity per product for one unit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Products(cmd.Context(), domain.ProductsInput{Upload: ref(args), Unit: unit})
			if err != nil {
				return err
			}
			return a.print(out, func() {
				a.table([]string{"PRODUCT", "TOTAL"}, len(out), func(i int) []string {
					return []string{out[i].Product, num(out[i].Total)}
				})
			})
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "unit of measure (default: the first unit of the upload)")
	return cmd
}

func cmdSummary(a *app) *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "summary [id|tipo]",
		Short: "every view of an upload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.svc.Summary(cmd.Context(), domain.ProductsInput{Upload: ref(args), Unit: unit})
			if err != nil {
				return err
			}
			return a.print(s, func() { a.summary(s) })
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "unit of measure for the product view")
	return cmd
}

func cmdPalette(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette <n>",
		Short: "print n chart colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("palette: %q is not a number", args[0])
			}
			out, err := uploadssvc.Colors(n)
			if err != nil {
				return err
			}
			return a.print(out, func() {
				for _, c := range out {
					fmt.Fprintln(a.out, c)
				}
			})
		},
	}
}

func cmdVersion(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "display the build version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			bi := version.For("stockboard")
			return a.print(bi, func() {
				fmt.Fprintf(a.out, "%s %s (%s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
			})
		},
	}
}
