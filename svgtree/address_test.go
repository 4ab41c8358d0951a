package svgtree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressInverse(t *testing.T) {
	doc := readScene(t)
	count := 0
	doc.Root.Walk(func(n *Node) {
		count++
		got, err := Resolve(doc.Root, AddressOf(n))
		require.NoError(t, err)
		assert.Same(t, n, got, AddressOf(n))
	})
	assert.Equal(t, 12, count)
}

func TestAddressOf(t *testing.T) {
	doc := readScene(t)
	root := doc.Root
	layer := root.Children[2]

	assert.Equal(t, "/svg", AddressOf(root))
	assert.Equal(t, "/svg/g[0]", AddressOf(layer))
	assert.Equal(t, "/svg/circle[0]", AddressOf(root.Children[3]))
	assert.Equal(t, "/svg/g[0]/path[0]", AddressOf(layer.Children[0]))
	assert.Equal(t, "/svg/g[0]/rect[0]", AddressOf(layer.Children[1]))
	assert.Equal(t, "/svg/g[0]/path[1]", AddressOf(layer.Children[2]))
	assert.Equal(t, "/svg/g[0]/g[0]/rect[0]", AddressOf(layer.Children[3].Children[1]))
}

func TestResolveErrors(t *testing.T) {
	doc := readScene(t)
	for _, address := range []string{
		"/g",
		"svg/g[0]",
		"/svg/g[1]",
		"/svg/g[0]/path[2]",
		"/svg/g",
		"/svg/g[x]",
		"/svg/g[-1]",
		"/svg/[0]",
	} {
		_, err := doc.Resolve(address)
		assert.Error(t, err, address)
		assert.True(t, errors.Is(err, ErrAddress), address)
		assert.Contains(t, err.Error(), doc.Source)
	}
}
