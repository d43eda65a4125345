package navigation

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"

	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
)

// SystemOpener opens URIs with the platform's default handler.
type SystemOpener struct {
	log *logger.Logger
	// command builds the process for a URI; replaced in tests.
	command func(ctx context.Context, uri string) *exec.Cmd
}

// NewSystemOpener returns an opener for the current platform.
func NewSystemOpener(log *logger.Logger) *SystemOpener {
	return &SystemOpener{log: log, command: platformCommand}
}

// OpenURI validates uri and hands it to the system opener.
func (o *SystemOpener) OpenURI(ctx context.Context, uri string) error {
	if err := Validate(uri); err != nil {
		return err
	}
	cmd := o.command(ctx, uri)
	if cmd == nil {
		return fmt.Errorf("navigation: no opener for %s", runtime.GOOS)
	}
	o.log.Debug("opening uri", "uri", uri, "command", cmd.Path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("navigation: start opener: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func platformCommand(ctx context.Context, uri string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "open", uri)
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", uri)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.CommandContext(ctx, "xdg-open", uri)
	default:
		return nil
	}
}

// Recorder remembers URIs instead of opening them. It backs
// --open-urls=false and tests.
type Recorder struct {
	mu     sync.Mutex
	log    *logger.Logger
	opened []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder(log *logger.Logger) *Recorder {
	return &Recorder{log: log}
}

// OpenURI records uri after validating it.
func (r *Recorder) OpenURI(_ context.Context, uri string) error {
	if err := Validate(uri); err != nil {
		return err
	}
	r.mu.Lock()
	r.opened = append(r.opened, uri)
	r.mu.Unlock()
	r.log.Info("navigation suppressed", "uri", uri)
	return nil
}

// Opened returns the recorded URIs in order.
func (r *Recorder) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}

// Validate rejects empty or scheme-less URIs.
func Validate(uri string) error {
	if uri == "" {
		return fmt.Errorf("navigation: empty URI")
	}
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("navigation: invalid URI: %w", err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("navigation: URI missing scheme: %q", uri)
	}
	return nil
}

var (
	_ events.URIOpener = (*SystemOpener)(nil)
	_ events.URIOpener = (*Recorder)(nil)
)
