package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

type BarOption func(*[]progressbar.Option)

// WithBarWriter sends the bar somewhere other than stdout.
func WithBarWriter(w io.Writer) BarOption {
	return func(opts *[]progressbar.Option) {
		*opts = append(*opts, progressbar.OptionSetWriter(w))
	}
}

func NewBar(len int, description string, options ...BarOption) *Bar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	}
	for _, option := range options {
		option(&opts)
	}
	return (*Bar)(progressbar.NewOptions(len, opts...))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Goto(i int) {
	_ = (*progressbar.ProgressBar)(b).Set(i)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
