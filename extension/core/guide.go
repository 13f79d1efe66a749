// guide.go implements "seaside guide". Guides are embedded in the binary;
// terminals get glamour rendering and pipes get raw markdown.

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the seaside usage guide",
		Long: `Outputs the seaside guide for humans and LLMs.

  seaside guide           # main guide
  seaside guide tree      # rendering trees
  seaside guide mcp       # MCP tools for LLMs`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return guide.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if errors.Is(err, guide.ErrUnknownTopic) {
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(guide.Names(), ", ")))
			}
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			raw, _ := c.Flags().GetBool(extension.FlagRaw)
			return cmd.PrintMarkdown(content, raw)
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without rendering")
	return c
}
