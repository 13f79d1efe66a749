package glob

import (
	"errors"
	"testing"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Single segments
		{"*", "deps", true},
		{"*", "deps|compile", false},
		{"dep?", "deps", true},
		{"deps", "deps", true},
		{"deps", "plugins", false},

		// Star stays inside its segment
		{"deps|*", "deps|compile", true},
		{"deps|*", "deps|compile|api", false},
		{"deps|*", "plugins|compile", false},
		{"*|compile", "deps|compile", true},

		// Double star
		{"**", "deps", true},
		{"**", "deps|compile|api", true},
		{"deps|**", "deps", true},
		{"deps|**", "deps|compile|api", true},
		{"deps|**", "plugins|java", false},
		{"**|compile", "compile", true},
		{"**|compile", "plugins|java|compile", true},
		{"**|compile", "plugins|java|compileOnly", false},
		{"plugins|**|test*", "plugins|test", true},
		{"plugins|**|test*", "plugins|java|testing", true},
		{"plugins|**|test*", "plugins|java|main", false},

		// Brackets
		{"deps|[ct]*", "deps|compile", true},
		{"deps|[ct]*", "deps|runtime", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.path, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := p.Match(tree.MustParsePath(tt.path)); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, pattern := range []string{"deps||*", "|deps", "deps|"} {
		if _, err := Compile(pattern); !errors.Is(err, tree.ErrMalformedPath) {
			t.Errorf("Compile(%q) error = %v, want %v", pattern, err, tree.ErrMalformedPath)
		}
	}
	if _, err := Compile("deps|[a-"); err == nil {
		t.Error("Compile(\"deps|[a-\") expected error for bad bracket")
	}
}

func TestIsPattern(t *testing.T) {
	if !IsPattern("deps|*") || !IsPattern("dep?") || !IsPattern("[ab]") {
		t.Error("IsPattern missed pattern syntax")
	}
	if IsPattern("deps|compile") {
		t.Error("IsPattern(\"deps|compile\") = true, want false")
	}
}
