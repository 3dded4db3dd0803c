package extract

// ProgressReporter receives extraction run milestones. Implementations must
// tolerate being called from the goroutine driving the run.
type ProgressReporter interface {
	// OnPartitionStart fires before an extractor processes its claimed
	// files.
	OnPartitionStart(extractorID string, files int)

	// OnPartitionDone fires after an extractor finished, successfully or
	// not.
	OnPartitionDone(extractorID string, out Output)
}

// NoOpProgressReporter discards all progress events.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnPartitionStart(string, int)  {}
func (NoOpProgressReporter) OnPartitionDone(string, Output) {}
