// Package extension provides shared flag constants for consistent naming
// across extensions. Use these instead of string literals so a flag means
// the same thing in every command.
package extension

// Boolean flags.
const (
	FlagASCII         = "ascii"          // ASCII tree connectors
	FlagDescriptions  = "descriptions"   // Show descriptions
	FlagDryRun        = "dry-run"        // Preview without making changes
	FlagExitCode      = "exit-code"      // Non-zero exit when differences are found
	FlagFailed        = "failed"         // Failed operations only
	FlagIncludeHidden = "include-hidden" // Include hidden files/directories
	FlagNoPaths       = "no-paths"       // Match descriptions only
	FlagLocal         = "local"          // Use local scope (gitignored)
	FlagLong          = "long"           // Long format output
	FlagMarkdown      = "markdown"       // Markdown output
	FlagParents       = "parents"        // Create missing ancestors
	FlagPathsOnly     = "paths-only"     // Output paths only
	FlagRaw           = "raw"            // Raw output without formatting
	FlagRecursive     = "recursive"      // Recursive operation
	FlagRegex         = "regex"          // Regular expression query
	FlagReverse       = "reverse"        // Reverse order
	FlagShare         = "share"          // Mark as shared (committed)
	FlagSort          = "sort"           // Sort by path
)

// Integer flags.
const (
	FlagLimit = "limit" // Maximum results
)

// String flags.
const (
	FlagDescription = "description" // Entry description
	FlagFile        = "file"        // Destination file
	FlagFormat      = "format"      // Entry file format
	FlagOrder       = "order"       // Sibling order
	FlagPath        = "path"        // Subtree filter
	FlagSince       = "since"       // Age filter, e.g. 7d
)
