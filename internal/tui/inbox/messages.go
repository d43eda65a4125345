package inbox

import (
	"image"

	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

// StateMsg carries a reconciled UI state from the combined provider stream.
type StateMsg struct {
	State state.UIState
}

// StreamClosedMsg reports that the state stream ended.
type StreamClosedMsg struct{}

// ImageLoadedMsg delivers the result of one image fetch.
type ImageLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

// RefreshDoneMsg reports the outcome of a provider refresh.
type RefreshDoneMsg struct {
	Err error
}

// ClearStatusMsg clears the status line if it still shows message Seq.
type ClearStatusMsg struct {
	Seq int
}
