package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/i18n"
	"chumidex.org/chumidex-web/internal/nav"
)

func newRoutesCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "routes [PATH...]",
		Short: "List the landing page navigation actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bundle, err := i18n.Load(i18n.Embedded(), "locales", cfg.DefaultLang, supportedLangs)
			if err != nil {
				return fmt.Errorf("load i18n: %w", err)
			}
			if lang == "" {
				lang = bundle.Fallback()
			}
			items := nav.Actions
			if len(args) > 0 {
				items = items[:0:0]
				for _, p := range args {
					it, ok := nav.Lookup(p)
					if !ok {
						return fmt.Errorf("no navigation action for %s", p)
					}
					items = append(items, it)
				}
			}
			writeRoutes(cmd.OutOrStdout(), bundle, lang, items)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "language for labels")
	return cmd
}

func writeRoutes(w io.Writer, bundle *i18n.Bundle, lang string, items []nav.Item) {
	var data [][]string
	for _, it := range items {
		data = append(data, []string{it.Path, bundle.T(lang, it.LabelKey), it.LabelKey})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ROUTE", "LABEL", "KEY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
