package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"stockboard/internal/services/api/uploads/domain"
)

// print writes v as JSON under --json, else runs the table renderer
func (a *app) print(v any, text func()) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func (a *app) table(header []string, n int, row func(int) []string) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i := 0; i < n; i++ {
		fmt.Fprintln(tw, strings.Join(row(i), "\t"))
	}
	_ = tw.Flush()
}

func (a *app) infoTable(list []domain.Info) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "no uploads")
		return
	}
	a.table([]string{"ID", "TIPO", "FILE", "ROWS", "UPLOADED"}, len(list), func(i int) []string {
		u := list[i]
		return []string{u.ID, u.Tipo, u.FileName, strconv.Itoa(u.RowCount), u.UploadedAt.Local().Format(time.DateTime)}
	})
}

func (a *app) rowsTable(u domain.Upload) {
	fmt.Fprintf(a.out, "%s (%s), %d rows\n", u.Tipo, u.FileName, len(u.Rows))
	a.table([]string{"PRODUTO", "CATEGORIA", "QUANTIDADE", "UNIDADE"}, len(u.Rows), func(i int) []string {
		r := u.Rows[i]
		return []string{r.Produto, r.Categoria, num(r.Qty), r.Unit}
	})
}

func (a *app) summary(s domain.Summary) {
	fmt.Fprintf(a.out, "%s (%s), %d rows\n\n", s.Upload.Tipo, s.Upload.FileName, s.Upload.RowCount)
	a.table([]string{"UNIT", "TOTAL"}, len(s.Totals), func(i int) []string {
		return []string{s.Totals[i].Unit, num(s.Totals[i].Total)}
	})
	if len(s.Categories) > 0 {
		fmt.Fprintln(a.out)
		a.table([]string{"CATEGORY", "ROWS", "COLOR"}, len(s.Categories), func(i int) []string {
			return []string{s.Categories[i].Category, strconv.Itoa(s.Categories[i].Count), s.Palette[i%len(s.Palette)]}
		})
	}
	fmt.Fprintf(a.out, "\nproducts in %s\n", s.Unit)
	a.table([]string{"PRODUCT", "TOTAL"}, len(s.Products), func(i int) []string {
		return []string{s.Products[i].Product, num(s.Products[i].Total)}
	})
}

func (a *app) mutation(res domain.MutationResult) {
	switch {
	case res.Declined:
		fmt.Fprintln(a.out, "cancelled")
	case !res.Changed:
		fmt.Fprintln(a.out, "nothing to remove")
	default:
		fmt.Fprintf(a.out, "%s: %d uploads remaining\n", res.Action, res.Remaining)
	}
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
