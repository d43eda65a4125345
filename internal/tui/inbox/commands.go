package inbox

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

// Refresher triggers a new provider emission.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ImageLoader fetches and decodes a card image.
type ImageLoader interface {
	Get(ctx context.Context, url, cacheKey string) (image.Image, error)
}

// waitForStateCmd blocks until the next state arrives on ch.
func waitForStateCmd(ch <-chan state.UIState) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return StreamClosedMsg{}
		}
		return StateMsg{State: st}
	}
}

func refreshCmd(ctx context.Context, r Refresher) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return RefreshDoneMsg{Err: r.Refresh(ctx)}
	}
}

func loadImageCmd(ctx context.Context, loader ImageLoader, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Get(ctx, url, url)
		return ImageLoadedMsg{URL: url, Image: img, Err: err}
	}
}

func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
