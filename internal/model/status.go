package model

// FeedStatus represents the state of the headline feed shown in the UI
type FeedStatus string

const (
	// FeedStatusIdle means nothing has been requested yet
	FeedStatusIdle FeedStatus = "Idle"

	// FeedStatusLoading means a fetch is in progress
	FeedStatusLoading FeedStatus = "Loading"

	// FeedStatusReady means the last fetch produced at least one article
	FeedStatusReady FeedStatus = "Ready"

	// FeedStatusEmpty means the last fetch produced no articles
	FeedStatusEmpty FeedStatus = "Empty"
)

// String returns the string representation of FeedStatus
func (fs FeedStatus) String() string {
	return string(fs)
}

// IsBusy returns true while a fetch is running
func (fs FeedStatus) IsBusy() bool {
	return fs == FeedStatusLoading
}

// IsSettled returns true once a fetch has finished, with or without articles
func (fs FeedStatus) IsSettled() bool {
	return fs == FeedStatusReady || fs == FeedStatusEmpty
}

// StatusForCount returns the settled status for a fetch that produced n articles
func StatusForCount(n int) FeedStatus {
	if n > 0 {
		return FeedStatusReady
	}
	return FeedStatusEmpty
}
