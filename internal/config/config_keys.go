// config_keys.go gives string-keyed access to configuration for the config
// command and the MCP server, e.g. "report.order" or "limits.max_depth".
//
// Optional fields are pointers so "not set" and "set to the zero value" stay
// distinct; defaults apply only to unset fields.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"report.order", "report.style", "report.descriptions",
		"limits.max_depth", "limits.max_path",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "report.order":
		return c.Order(), nil
	case "report.style":
		return c.Style(), nil
	case "report.descriptions":
		return strconv.FormatBool(c.Descriptions()), nil
	case "limits.max_depth":
		return strconv.Itoa(c.MaxDepth()), nil
	case "limits.max_path":
		return strconv.Itoa(c.MaxPath()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "report.order":
		v := strings.ToLower(value)
		if v != tree.OrderName && v != tree.OrderInsertion {
			return fmt.Errorf("%w: report.order must be %s or %s", ErrInvalidValue, tree.OrderName, tree.OrderInsertion)
		}
		c.Report.Order = v
	case "report.style":
		v := strings.ToLower(value)
		if v != StyleUnicode && v != StyleASCII {
			return fmt.Errorf("%w: report.style must be %s or %s", ErrInvalidValue, StyleUnicode, StyleASCII)
		}
		c.Report.Style = v
	case "report.descriptions":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: report.descriptions must be true or false", ErrInvalidValue)
		}
		c.Report.Descriptions = &b
	case "limits.max_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxDepth || n > MaxMaxDepth {
			return fmt.Errorf("%w: limits.max_depth must be between %d and %d", ErrInvalidValue, MinMaxDepth, MaxMaxDepth)
		}
		c.Limits.MaxDepth = &n
	case "limits.max_path":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxPath || n > MaxMaxPath {
			return fmt.Errorf("%w: limits.max_path must be between %d and %d", ErrInvalidValue, MinMaxPath, MaxMaxPath)
		}
		c.Limits.MaxPath = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		out[k], _ = c.Get(k)
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "report.order":
		return c.Report.Order != ""
	case "report.style":
		return c.Report.Style != ""
	case "report.descriptions":
		return c.Report.Descriptions != nil
	case "limits.max_depth":
		return c.Limits.MaxDepth != nil
	case "limits.max_path":
		return c.Limits.MaxPath != nil
	default:
		return false
	}
}
