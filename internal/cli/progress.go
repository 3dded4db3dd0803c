package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"potx/internal/extract"
)

// barReporter implements extract.ProgressReporter with a spinner per
// extractor partition. Partitions run one at a time, so a single active
// bar is enough.
type barReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newBarReporter(quiet bool) *barReporter {
	return &barReporter{quiet: quiet}
}

func (r *barReporter) OnPartitionStart(id string, files int) {
	if r.quiet {
		return
	}
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("%s (%d files)", id, files)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

func (r *barReporter) OnPartitionDone(id string, out extract.Output) {
	if r.quiet || r.bar == nil {
		return
	}
	r.bar.Finish()
	r.bar = nil
	fmt.Fprintln(os.Stderr)
	if len(out.Diagnostics) > 0 {
		fmt.Fprintf(os.Stderr, "%s finished with %d diagnostics\n", id, len(out.Diagnostics))
	}
}
