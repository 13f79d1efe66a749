/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but are not initialised until the first
// command that needs the catalog runs. The catalog service is opened once and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/catalog"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
)

// noStoreCommands lists commands that bypass catalog initialisation.
// Built from the bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// authorRequiredCommands lists commands that write catalog entries.
var authorRequiredCommands = map[string]bool{
	"add":      true,
	"describe": true,
	"rm":       true,
	"clear":    true,
	"import":   true,
	"sync":     true,
}

// buildNoStoreCommands creates the set of commands that skip catalog
// initialisation: the bootstrap commands, which must work before
// "seaside init", and commands declared by extension.Storeless.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"init":   true,
		"guide":  true,
		"config": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

var (
	extContext extension.Context
	extService *catalog.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions opens the catalog and injects it into extensions, once per
// process.
func initExtensions() error {
	initOnce.Do(func() {
		svc, err := catalog.NewIn(DB(), Dir())
		if err != nil {
			initErr = fmt.Errorf("opening database: %w", err)
			return
		}
		extService = svc

		log.SetProject(svc.Dir())

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(svc, svc.DB(), cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noStoreCommands = buildNoStoreCommands()
	})
}
