package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	index, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, index, "# seaside")

	add, err := Get("add")
	require.NoError(t, err)
	assert.Contains(t, add, "seaside add")

	_, err = Get("missing")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestTopics(t *testing.T) {
	topics, err := Topics()
	require.NoError(t, err)

	assert.Contains(t, topics, Topic{Name: "add", Title: "Adding entries"})
	assert.Contains(t, topics, Topic{Name: "import", Title: "Import and export"})
	assert.NotContains(t, Names(), Index)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Trees", title("intro\n# Trees\n## Sub\n", "x"))
	assert.Equal(t, "x", title("no heading", "x"))
}
