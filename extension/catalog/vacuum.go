// vacuum.go implements "seaside vacuum".

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/vacuum"
	"github.com/spf13/cobra"
)

func (e *Extension) newVacuumCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Compact the catalog database",
		Long: `Rewrite the database file without the space left behind by rm and
clear. Use --dry-run to see how much would be reclaimed.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			dry, _ := c.Flags().GetBool(extension.FlagDryRun)

			w := cmd.Out()
			if cmd.JSON() {
				w = io.Discard
			}

			result, err := vacuum.Run(c.Context(), w, e.svc, vacuum.Options{DryRun: dry})

			log.Event("catalog:vacuum", "vacuum").
				Author(cmd.Author()).
				Detail("reclaimable", result.Reclaimable).
				Detail("dry_run", dry).
				Write(err)

			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
			}
			return cmd.PrintJSON(result)
		},
	}
	c.Flags().Bool(extension.FlagDryRun, false, "Report reclaimable space only")
	return c
}
