// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, Go version, and platform.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			if cmd.JSON() {
				return cmd.PrintJSON(info)
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
}
