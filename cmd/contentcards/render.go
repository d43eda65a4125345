package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/contentcards/internal/components"
	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

const (
	defaultRenderWidth = 80
	maxImageFetches    = 4
)

type renderOptions struct {
	width    int
	timeout  time.Duration
	noImages bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the inbox once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Output width in cells (default: terminal width)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Give up waiting for the feed after this long")
	cmd.Flags().BoolVar(&opts.noImages, "no-images", false, "Draw placeholders instead of fetching images")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	app, err := newAppContext(cmd, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	st, err := firstSettled(ctx, app)
	if err != nil {
		return newCommandError("render", "waiting for cards", err, "Check that the feed file exists and is readable.")
	}

	dark := components.NewRenderer().Dark()
	prefetched := &imageSet{images: make(map[string]image.Image)}
	if s, ok := st.(state.Success); ok && !opts.noImages {
		prefetchImages(ctx, app, imageURLs(s, dark), prefetched)
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	rendererOpts := append(app.RendererOptions(), components.WithImages(prefetched), components.WithDarkBackground(dark))
	r := components.NewRenderer(rendererOpts...)
	out := r.Inbox(st, components.Selection{Card: -1, Button: -1}, components.ViewContext{Width: width})
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if failed, ok := st.(state.Error); ok {
		return newCommandError("render", "loading cards", failed.Cause, "Fix the feed and run render again.")
	}
	return nil
}

// firstSettled refreshes the feed and returns the first state that is not
// Loading.
func firstSettled(ctx context.Context, app *AppContext) (state.UIState, error) {
	states := state.Combine(ctx, app.Provider.Items(ctx), app.Provider.Template(ctx), app.Policy)

	// Failures are delivered on the streams as well.
	if err := app.Provider.Refresh(ctx); err != nil {
		app.Log.Debug("initial refresh failed", "error", err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case st, ok := <-states:
			if !ok {
				return nil, ctx.Err()
			}
			if _, loading := st.(state.Loading); !loading {
				return st, nil
			}
		}
	}
}

func imageURLs(s state.Success, dark bool) []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(img *content.Image) {
		if img == nil {
			return
		}
		if url := img.Source(dark); url != "" && !seen[url] {
			seen[url] = true
			urls = append(urls, url)
		}
	}
	for _, card := range s.Visible() {
		add(content.ImageOf(card.Template))
	}
	add(s.Template.EmptyImage)
	return urls
}

// prefetchImages loads urls concurrently into set. Failed images are logged
// and left to render as placeholders.
func prefetchImages(ctx context.Context, app *AppContext, urls []string, set *imageSet) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxImageFetches)

	for _, url := range urls {
		url := url
		g.Go(func() error {
			img, err := app.Images.Get(gctx, url, url)
			if err != nil {
				app.Log.Warn("image unavailable", "url", url, "error", err.Error())
				return nil
			}
			set.put(url, img)
			return nil
		})
	}
	_ = g.Wait()
}

type imageSet struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

func (s *imageSet) put(url string, img image.Image) {
	s.mu.Lock()
	s.images[url] = img
	s.mu.Unlock()
}

func (s *imageSet) Lookup(url string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[url]
	return img, ok
}

func terminalWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultRenderWidth
}
