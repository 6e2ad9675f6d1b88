package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpaws/synthfeedback/internal/persona"
)

var (
	personaCount    int
	personaDescribe bool
)

// personasCmd represents the personas command
var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "Print a freshly generated persona pool",
	Long: `Personas generates a pool the same way run does and prints it as JSON, or
as the plain-text descriptions shown to the model with --describe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if personaCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", personaCount)
		}
		pool := persona.NewGenerator(nil).Generate(personaCount)
		out := cmd.OutOrStdout()

		if personaDescribe {
			for i, p := range pool {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, persona.Describe(p))
			}
			return nil
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pool)
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)

	personasCmd.Flags().IntVarP(&personaCount, "count", "n", 5, "number of personas")
	personasCmd.Flags().BoolVar(&personaDescribe, "describe", false, "print model-facing descriptions instead of JSON")
}
