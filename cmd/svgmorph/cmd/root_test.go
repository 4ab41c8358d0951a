package cmd

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handsPattern = "../../../svgmorph/testdata/hand*.svg"

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunGIF(t *testing.T) {
	output := filepath.Join(t.TempDir(), "hands.gif")
	out, err := execute(t, "-q", "-o", output, "--fps", "4", "--width", "30", handsPattern)
	require.NoError(t, err)
	assert.Equal(t, output, strings.TrimSpace(out))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 2*4+1)
	assert.Equal(t, 25, anim.Delay[0])
	assert.Equal(t, 30, anim.Config.Width)
}

func TestRunPNGAndPDF(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "-q", "-o", filepath.Join(dir, "frames"), "--fps", "2", "--width", "20", handsPattern)
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(dir, "frames"))
	require.NoError(t, err)
	assert.Len(t, entries, 2*2+1)

	board := filepath.Join(dir, "board.pdf")
	_, err = execute(t, "-q", "-o", board, "--fps", "2", "--width", "20", handsPattern)
	require.NoError(t, err)
	content, err := os.ReadFile(board)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRunErrors(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.gif")

	_, err := execute(t, "-q", "-o", output)
	assert.Error(t, err) // no input

	_, err = execute(t, "-q", "-o", output, "../../../svgmorph/testdata/hand0.svg", "../../../svgmorph/testdata/broken-count.svg")
	assert.Error(t, err)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", handsPattern)
	require.NoError(t, err)
	assert.Contains(t, out, "hand0.svg")
	assert.Contains(t, out, "hand2.svg")
	// the thumb moved to the third position in hand1
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "/svg/path[1]") {
			assert.Contains(t, line, "/svg/path[2]")
		}
	}

	out, err = execute(t, "check", "--matching", "permissive", handsPattern)
	require.NoError(t, err)
	assert.Contains(t, out, "/svg/path[0]")

	_, err = execute(t, "check", "--matching", "greedy", handsPattern)
	assert.Error(t, err)
}

// sameShapes holds three paths with the same command sequence and
// no id: the permissive matching binds them all to the first one.
const sameShapes = `<svg viewBox="0 0 10 10">
	<path d="M 1 1 L 2 2"/>
	<path d="M 3 3 L 4 4"/>
	<path d="M 5 5 L 6 6"/>
</svg>`

func TestCheckMatchingSources(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "same.svg")
	require.NoError(t, os.WriteFile(input, []byte(sameShapes), 0o644))
	config := filepath.Join(dir, "svgmorph.yaml")
	require.NoError(t, os.WriteFile(config, []byte("matching: permissive\n"), 0o644))

	isPermissive := func(out string) bool { return !strings.Contains(out, "/svg/path[2]") }

	out, err := execute(t, "check", input)
	require.NoError(t, err)
	assert.False(t, isPermissive(out))

	out, err = execute(t, "check", "--config", config, input)
	require.NoError(t, err)
	assert.True(t, isPermissive(out))

	// flags win over the config file
	out, err = execute(t, "check", "--config", config, "--matching", "one-to-one", input)
	require.NoError(t, err)
	assert.False(t, isPermissive(out))

	t.Setenv("SVGMORPH_MATCHING", "permissive")
	out, err = execute(t, "check", input)
	require.NoError(t, err)
	assert.True(t, isPermissive(out))
}
