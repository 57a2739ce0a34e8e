// =============================================================================
// Address Label Converter - Countries Command
// =============================================================================
//
// This file defines the 'countries' command, which shows how country input
// resolves to the ISO 3166-1 alpha-3 codes used in the LAND column.
//
// COMMAND USAGE:
//   labelconv countries            # list the whole table
//   labelconv countries <name...>  # resolve one or more inputs
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/country"
)

var countriesCmd = &cobra.Command{
	Use:   "countries [query...]",
	Short: "Look up country names and codes",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountries(cmd.OutOrStdout(), country.Default(), args)
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(out io.Writer, dir *country.Directory, queries []string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if len(queries) == 0 {
		fmt.Fprintln(tw, "ALPHA3\tALPHA2\tNUM\tENGLISH\tGERMAN")
		for _, e := range dir.Entries() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				e.Alpha3, e.Alpha2, e.Numeric, e.EnglishShortName, e.GermanShortName)
		}
		return tw.Flush()
	}

	for _, q := range queries {
		res := dir.Resolve(q)
		if !res.Matched {
			fmt.Fprintf(tw, "%q\tnot found (defaults to %s)\n", q, res.Code)
			continue
		}
		e, _ := dir.Lookup(res.Code)
		fmt.Fprintf(tw, "%q\t%s\t%s / %s\n", q, res.Code, e.EnglishShortName, e.GermanShortName)
	}
	return tw.Flush()
}
