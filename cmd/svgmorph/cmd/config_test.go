package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benoitkugler/svgmorph/svgmorph"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", parseFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "animation.gif", cfg.Output)
	assert.Equal(t, formatGIF, cfg.Format)
	assert.Equal(t, 10., cfg.FPS)
	assert.Equal(t, time.Second, cfg.transitionDuration())
	assert.Equal(t, 100*time.Millisecond, cfg.frameDelay())
	assert.Equal(t, svgmorph.OneToOne, cfg.matchMode())
	assert.NotNil(t, cfg.rasterOptions().Background)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig("", parseFlags(t, "-o", "out.PDF", "--matching", "permissive", "--width", "64", "--background", ""))
	require.NoError(t, err)
	assert.Equal(t, formatPDF, cfg.Format)
	assert.Equal(t, svgmorph.Permissive, cfg.matchMode())
	assert.Equal(t, 64, cfg.rasterOptions().Width)
	assert.Nil(t, cfg.rasterOptions().Background)

	cfg, err = loadConfig("", parseFlags(t, "-o", "frames", "--format", "GIF"))
	require.NoError(t, err)
	assert.Equal(t, formatGIF, cfg.Format)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SVGMORPH_FPS", "25")
	t.Setenv("SVGMORPH_MATCHING", "permissive")

	cfg, err := loadConfig("", parseFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 25., cfg.FPS)
	assert.Equal(t, svgmorph.Permissive, cfg.matchMode())

	// flags win over the environment
	cfg, err = loadConfig("", parseFlags(t, "--fps", "5"))
	require.NoError(t, err)
	assert.Equal(t, 5., cfg.FPS)
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "svgmorph.yaml")
	require.NoError(t, os.WriteFile(file, []byte("fps: 4\nseconds: 0.5\noutput: board.pdf\n"), 0o644))

	cfg, err := loadConfig(file, parseFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 4., cfg.FPS)
	assert.Equal(t, 500*time.Millisecond, cfg.transitionDuration())
	assert.Equal(t, formatPDF, cfg.Format)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), parseFlags(t))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "mp4"},
		{"--fps", "0"},
		{"--seconds", "-1"},
		{"--width", "-2"},
		{"--matching", "greedy"},
		{"--background", "#12"},
		{"--output", ""},
	} {
		_, err := loadConfig("", parseFlags(t, args...))
		assert.Error(t, err, args)
	}
}

func TestFormatFromOutput(t *testing.T) {
	assert.Equal(t, formatGIF, formatFromOutput("a/b.gif"))
	assert.Equal(t, formatPDF, formatFromOutput("b.Pdf"))
	assert.Equal(t, formatPNG, formatFromOutput("frames"))
}

func TestExpandInputs(t *testing.T) {
	files, err := expandInputs([]string{"../../../svgmorph/testdata/hand*.svg"})
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "hand0.svg", filepath.Base(files[0]))
	assert.Equal(t, "hand2.svg", filepath.Base(files[2]))

	// patterns keep their order
	files, err = expandInputs([]string{"../../../svgmorph/testdata/hand2.svg", "../../../svgmorph/testdata/hand0.svg"})
	require.NoError(t, err)
	assert.Equal(t, "hand2.svg", filepath.Base(files[0]))

	_, err = expandInputs([]string{"../../../svgmorph/testdata/nothing*.svg"})
	assert.Error(t, err)
	_, err = expandInputs([]string{"[invalid"})
	assert.Error(t, err)
}
