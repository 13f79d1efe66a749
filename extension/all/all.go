// Package all imports the built-in seaside extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each extension registers itself via init()
	_ "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension/catalog"
	_ "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension/core"
	_ "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension/report"
)
