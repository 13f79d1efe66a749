// Package guide embeds the help pages shown by "seaside guide" and the
// seaside_guide MCP tool. Each page is a markdown file whose first heading
// is its title; guide.md is the index.
package guide

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the page shown when no topic is given.
const Index = "guide"

// ErrUnknownTopic is returned by Get for a page that does not exist.
var ErrUnknownTopic = errors.New("unknown guide topic")

// Topic names one guide page.
type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Get returns the markdown for a topic, or the index page for "".
func Get(name string) (string, error) {
	if name == "" {
		name = Index
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrUnknownTopic, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Topics returns every page except the index, in file name order.
func Topics() ([]Topic, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var out []Topic
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == Index {
			continue
		}
		data, err := files.ReadFile(e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, Topic{Name: name, Title: title(string(data), name)})
	}
	return out, nil
}

// Names returns the topic names, for completion and error messages.
func Names() []string {
	topics, _ := Topics()
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

// title is the text of the first markdown heading, or fallback.
func title(md, fallback string) string {
	sc := bufio.NewScanner(strings.NewReader(md))
	for sc.Scan() {
		if t, ok := strings.CutPrefix(sc.Text(), "# "); ok {
			return strings.TrimSpace(t)
		}
	}
	return fallback
}
