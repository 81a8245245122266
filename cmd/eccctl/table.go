package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/ecckit/ecc"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the syndrome table of the active decode mode",
	Long: `The table command lists, for every syndrome, what the active decoder
does with it: the data bit it flips, or why it refuses to.

Example:
  eccctl table
  eccctl table --mode reference`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

type tableRow struct {
	Syndrome uint8      `json:"syndrome"`
	Status   ecc.Status `json:"status"`
	Position int        `json:"position"`
}

// syndromeTable decodes an all-zero group against each possible code. With
// zero data the syndrome equals the code, so every syndrome is visited once.
func syndromeTable(mode ecc.Mode) []tableRow {
	dec := mode.Decoder()
	rows := make([]tableRow, 0, 8)
	for c := ecc.Code(0); c <= ecc.CodeMask; c++ {
		var d ecc.Bits
		res := dec(&d, c)
		rows = append(rows, tableRow{Syndrome: res.Syndrome, Status: res.Status, Position: res.Position})
	}
	return rows
}

func runTable() error {
	mode, err := currentMode()
	if err != nil {
		return err
	}
	rows := syndromeTable(mode)

	if jsonOut {
		return printJSON(struct {
			Mode ecc.Mode   `json:"mode"`
			Rows []tableRow `json:"rows"`
		}{mode, rows})
	}

	printInfo("Mode: %s\n", mode)
	printInfo("%-9s %-14s %s\n", "SYNDROME", "STATUS", "FLIPS")
	for _, r := range rows {
		flips := "-"
		if r.Position >= 0 {
			flips = "d" + string(rune('0'+r.Position))
		}
		printInfo("%-9d %-14s %s\n", r.Syndrome, r.Status, flips)
	}
	return nil
}
