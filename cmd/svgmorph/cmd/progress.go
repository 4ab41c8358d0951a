package cmd

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

type frameProgress struct {
	*progressbar.ProgressBar
}

// newFrameProgress create a new progress bar like this:
// [rendering frames]  94% [==============================================>   ] (18/19, 6 it/s) [3s:0s]
func newFrameProgress(total int, describe string) frameProgress {
	return frameProgress{
		progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetDescription(describe),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() { os.Stderr.WriteString("\n") }),
		),
	}
}

// Increment add 1 to progress bar
func (fp frameProgress) Increment() {
	if err := fp.Add(1); err != nil {
		logrus.Errorf("failed to increment progress bar, err: %s", err)
	}
}
