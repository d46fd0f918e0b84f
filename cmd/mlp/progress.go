package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// epochProgress shows a progress bar over training epochs with the latest
// loss as its description.
type epochProgress struct {
	bar    *progressbar.ProgressBar
	w      io.Writer
	epochs int
}

func newEpochProgress(w io.Writer, epochs int) *epochProgress {
	bar := progressbar.NewOptions(epochs,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("training"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("epochs"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &epochProgress{bar: bar, w: w, epochs: epochs}
}

// OnEpoch matches nn.TrainConfig.OnEpoch.
func (p *epochProgress) OnEpoch(epoch int, loss float32) {
	if epoch%100 == 0 || epoch+1 == p.epochs {
		p.bar.Describe(fmt.Sprintf("epoch %s loss=%.5f", humanize.Comma(int64(epoch+1)), loss))
	}
	_ = p.bar.Add(1)
}

// Close finishes the bar and ends its line.
func (p *epochProgress) Close() {
	_ = p.bar.Finish()
	fmt.Fprintln(p.w)
}
