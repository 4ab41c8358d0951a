package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/benoitkugler/svgmorph/svgdraw"
	"github.com/benoitkugler/svgmorph/svgmorph"
	"github.com/benoitkugler/svgmorph/svgpdf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	cfgFile      string
	debugModeOn  bool
	hideProgress bool
}

var longRootCmdDescription = `svgmorph animates a sequence of SVG documents describing the same
scene in different poses. The top-level shapes of the documents are matched
(by id, then by shape) and the geometry of the matched paths is linearly
interpolated between consecutive documents.

Input patterns are expanded and sorted, so that
  svgmorph -o hand.gif 'hand*.svg'
animates hand0.svg, hand1.svg, ... in this order.
`

// NewRootCmd returns the svgmorph command, writing its
// reports to `out`.
func NewRootCmd(out io.Writer) *cobra.Command {
	var opts rootOpts
	rootCmd := &cobra.Command{
		Use:           "svgmorph [flags] <file or pattern>...",
		Short:         "Interpolate SVG documents into an animation",
		Long:          longRootCmdDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(opts.debugModeOn)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			files, err := expandInputs(args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, files, !opts.hideProgress, out)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.Flags().BoolVarP(&opts.hideProgress, "quiet", "q", false, "hide the progress bar")
	addConfigFlags(rootCmd.Flags())

	rootCmd.AddCommand(newCheckCmd(out, &opts))
	return rootCmd
}

func initLogger(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// run renders the animation of `files` as configured by `cfg`.
func run(ctx context.Context, cfg Config, files []string, showProgress bool, out io.Writer) error {
	start := time.Now()
	trans, err := svgmorph.LoadTransition(files, svgmorph.WithMatchMode(cfg.matchMode()))
	if err != nil {
		return err
	}
	tl := svgdraw.NewTimeline(trans, cfg.FPS, cfg.transitionDuration())
	logrus.Infof("animating %d documents into %d frames", trans.Len(), tl.Len())

	ro := svgdraw.RenderOptions{Workers: cfg.Workers}
	if showProgress {
		ro.Progress = newFrameProgress(tl.Len(), "[rendering frames]").Increment
	}
	frames, err := svgdraw.Render(ctx, trans, tl, cfg.rasterOptions(), ro)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case formatGIF:
		err = writeFile(cfg.Output, func(w io.Writer) error {
			return svgdraw.WriteGIF(w, frames, cfg.frameDelay())
		})
	case formatPDF:
		opts := svgpdf.StoryboardOptions{Margin: 10}
		if cfg.Caption {
			opts.Caption = func(i int) string { return fmt.Sprintf("t = %.3f", tl.Time(i)) }
		}
		err = writeFile(cfg.Output, func(w io.Writer) error {
			return svgpdf.WriteStoryboard(w, frames, opts)
		})
	case formatPNG:
		_, err = svgdraw.WritePNGs(cfg.Output, "frame-", frames)
	}
	if err != nil {
		return err
	}
	logrus.Infof("%s written in %s", cfg.Output, time.Since(start).Round(time.Millisecond))
	fmt.Fprintln(out, cfg.Output)
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Execute runs the root command, exiting with a non zero
// status on failure. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logrus.Errorf("svgmorph: %v", err)
		stop()
		os.Exit(1)
	}
}
