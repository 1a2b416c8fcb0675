package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the matcher list the current configuration would build",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlugin()
		if err != nil {
			return err
		}

		fmt.Println(renderHeader("Chunk groups"))

		list := p.Matchers()
		if len(list) == 0 {
			fmt.Println("No matchers generated; everything under node_modules falls back to vendor.")
		} else {
			rows := pterm.TableData{{"GROUP", "TIER"}}
			for _, m := range list {
				rows = append(rows, []string{m.Name, m.Tier.String()})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return err
			}
		}

		fmt.Println()
		fmt.Println(formatBold(p.Summary().String()))
		return nil
	},
}
