// config.go implements "seaside config".
//
// Local config (.seaside/config.yaml) takes precedence over global
// (~/.seaside/config.yaml). --local forces the local file even when it does
// not exist yet.

package core

import (
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  seaside config                      # show config
  seaside config report.order         # show one value
  seaside config report.order insertion
  seaside config limits.max_depth 8

Keys:
  author.name, author.email
  report.order         name | insertion
  report.style         unicode | ascii
  report.descriptions  true | false
  limits.max_depth     maximum path segments
  limits.max_path      maximum path length in bytes

Configuration locations:
  Global: ~/.seaside/config.yaml
  Local:  .seaside/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.`,
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: config.ValidKeys(),
		RunE:      runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.seaside/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		log.Event("core:config", "list").Author(cmd.Author()).Write(nil)
		all := cfg.All()
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Author(cmd.Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		v, _ := cfg.Get(args[0])
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v, "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], v, scopeName)
	}
	return nil
}
