package ls_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/catalog"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/ls"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	require.NoError(t, catalog.Init(false, "", false, ""))
	svc, err := catalog.New("")
	require.NoError(t, err)
	defer svc.Close()
	ctx := context.Background()

	for _, p := range []string{"b", "b|z", "b|a", "c"} {
		_, err := svc.Add(ctx, tree.MustParsePath(p), "", service.AddOptions{Author: "alice"})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	res, err := ls.Run(ctx, &buf, svc, ls.Options{Paths: true})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count())
	assert.Equal(t, "b\nb|z\nb|a\nc\n", buf.String())

	buf.Reset()
	_, err = ls.Run(ctx, &buf, svc, ls.Options{Prefix: tree.MustParsePath("b"), Paths: true, Sorted: true})
	require.NoError(t, err)
	assert.Equal(t, "b\nb|a\nb|z\n", buf.String())

	buf.Reset()
	_, err = ls.Run(ctx, &buf, svc, ls.Options{Prefix: tree.MustParsePath("b"), Paths: true, Sorted: true, Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, "b|z\nb|a\nb\n", buf.String())

	buf.Reset()
	res, err = ls.Run(ctx, &buf, svc, ls.Options{Long: true, Prefix: tree.MustParsePath("c")})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "alice")
	require.Len(t, res.ToJSON(), 1)
	assert.Equal(t, "c", res.ToJSON()[0].Path)

	buf.Reset()
	_, err = ls.Run(ctx, &buf, svc, ls.Options{Pattern: "b|*", Paths: true})
	require.NoError(t, err)
	assert.Equal(t, "b|z\nb|a\n", buf.String())

	_, err = ls.Run(ctx, &buf, svc, ls.Options{Pattern: "b||*"})
	assert.ErrorIs(t, err, tree.ErrMalformedPath)

	buf.Reset()
	res, err = ls.Run(ctx, &buf, svc, ls.Options{Since: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count())
	res, err = ls.Run(ctx, &buf, svc, ls.Options{Since: 1 << 40})
	require.NoError(t, err)
	assert.Zero(t, res.Count())
}
