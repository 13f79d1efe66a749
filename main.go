/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension/all"
)

func main() {
	cmd.Execute()
}
