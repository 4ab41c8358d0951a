package cmd

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/benoitkugler/svgmorph/svgmorph"
	"github.com/benoitkugler/svgmorph/svgraster"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	formatGIF = "gif"
	formatPNG = "png"
	formatPDF = "pdf"

	envPrefix = "SVGMORPH"
)

var supportedFormats = []string{formatGIF, formatPNG, formatPDF}

// Config holds the settings of a run, merged from
// the config file, the environment and the flags.
type Config struct {
	Output     string  `mapstructure:"output"`
	Format     string  `mapstructure:"format"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Background string  `mapstructure:"background"`
	FPS        float64 `mapstructure:"fps"`
	Seconds    float64 `mapstructure:"seconds"` // duration of each transition
	Matching   string  `mapstructure:"matching"`
	Workers    int     `mapstructure:"workers"`
	Caption    bool    `mapstructure:"caption"`
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "animation.gif", "output file (gif, pdf) or directory (png frames)")
	flags.String("format", "", fmt.Sprintf("output format, one of %v (default from the output extension)", supportedFormats))
	flags.Int("width", 0, "width of the frames in pixels (default from the viewBox)")
	flags.Int("height", 0, "height of the frames in pixels (default from the viewBox)")
	flags.String("background", "gray", "background color: name, #rgb or #rrggbb")
	flags.Float64("fps", 10, "frames per second")
	flags.Float64("seconds", 1, "duration of the transition between two documents, in seconds")
	addMatchingFlag(flags)
	flags.Int("workers", 0, "number of frames rendered concurrently (default: number of CPUs)")
	flags.Bool("caption", true, "write the frame time below each page of a pdf storyboard")
}

// newViper merges, by increasing priority, the flag defaults,
// the config file (if any), the SVGMORPH_* variables and the flags.
func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", cfgFile)
		}
	}
	return v, nil
}

func addMatchingFlag(flags *pflag.FlagSet) {
	flags.String("matching", svgmorph.OneToOne.String(), "shape matching mode: one-to-one or permissive")
}

// loadMatchMode resolves the matching mode with the same precedence
// as loadConfig.
func loadMatchMode(cfgFile string, flags *pflag.FlagSet) (svgmorph.MatchMode, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return 0, err
	}
	return svgmorph.ParseMatchMode(v.GetString("matching"))
}

// loadConfig decodes and validates the settings of a rendering run.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding configuration")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Output == "" {
		return errors.New("missing output")
	}
	if cfg.Format == "" {
		cfg.Format = formatFromOutput(cfg.Output)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case formatGIF, formatPNG, formatPDF:
	default:
		return errors.Errorf("unsupported format %q, expected one of %v", cfg.Format, supportedFormats)
	}
	if cfg.FPS <= 0 {
		return errors.Errorf("invalid fps %g", cfg.FPS)
	}
	if cfg.Seconds <= 0 {
		return errors.Errorf("invalid transition duration %g", cfg.Seconds)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.Errorf("invalid frame size %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := svgmorph.ParseMatchMode(cfg.Matching); err != nil {
		return err
	}
	if _, err := cfg.background(); err != nil {
		return err
	}
	return nil
}

func formatFromOutput(output string) string {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".gif":
		return formatGIF
	case ".pdf":
		return formatPDF
	default:
		return formatPNG
	}
}

func (cfg Config) matchMode() svgmorph.MatchMode {
	mode, _ := svgmorph.ParseMatchMode(cfg.Matching) // checked by validate
	return mode
}

func (cfg Config) background() (color.Color, error) {
	if cfg.Background == "" {
		return nil, nil
	}
	return svgraster.ParseColor(cfg.Background)
}

func (cfg Config) rasterOptions() svgraster.Options {
	bg, _ := cfg.background() // checked by validate
	return svgraster.Options{Width: cfg.Width, Height: cfg.Height, Background: bg}
}

func (cfg Config) transitionDuration() time.Duration {
	return time.Duration(cfg.Seconds * float64(time.Second))
}

func (cfg Config) frameDelay() time.Duration {
	return time.Duration(float64(time.Second) / cfg.FPS)
}

// expandInputs resolves the glob patterns of `args`.
// The files of each pattern are sorted; patterns keep their order.
func expandInputs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no file matches %q", pattern)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, errors.New("no input file")
	}
	return files, nil
}
