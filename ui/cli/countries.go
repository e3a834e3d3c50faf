// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toeirei/regform/internal/countries"
)

func newCountriesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Fetch and print the country list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := countryLoader().Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch countries: %w", err)
			}
			return printCountries(cmd.OutOrStdout(), opts, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the options as JSON")
	return cmd
}

func printCountries(w io.Writer, opts []countries.Option, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\n", o.Value, o.Label)
	}
	return tw.Flush()
}
