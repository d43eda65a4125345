package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/singleflight"

	"github.com/alexisbeaulieu97/contentcards/internal/logger"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	ccerrors "github.com/alexisbeaulieu97/contentcards/pkg/errors"
)

const maxImageBytes = 10 << 20

// Fetcher loads card images. The callback is invoked exactly once.
type Fetcher interface {
	Fetch(ctx context.Context, url, cacheKey string, cb func(state.Result[image.Image]))
}

// Options configures a Manager.
type Options struct {
	// CacheDir holds downloaded image bytes. Empty disables the disk cache.
	CacheDir string
	Timeout  time.Duration
	Client   *http.Client
	Logger   *logger.Logger
}

// Manager fetches images memory cache first, then disk cache, then network.
// Concurrent requests for the same key share one download.
type Manager struct {
	cacheDir string
	client   *http.Client
	log      *logger.Logger
	group    singleflight.Group

	mu     sync.RWMutex
	memory map[string]image.Image
}

// NewManager builds a Manager, creating the cache directory if needed.
func NewManager(opts Options) (*Manager, error) {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	if opts.CacheDir != "" {
		if err := os.MkdirAll(opts.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("create image cache directory: %w", err)
		}
	}
	return &Manager{
		cacheDir: opts.CacheDir,
		client:   client,
		log:      opts.Logger.With("component", "images"),
		memory:   make(map[string]image.Image),
	}, nil
}

// Fetch loads the image in the background and reports the result to cb.
func (m *Manager) Fetch(ctx context.Context, rawURL, cacheKey string, cb func(state.Result[image.Image])) {
	go func() {
		img, err := m.Get(ctx, rawURL, cacheKey)
		if err != nil {
			cb(state.Fail[image.Image](err))
			return
		}
		cb(state.Ok(img))
	}()
}

// Get loads the image synchronously. cacheKey defaults to the URL.
func (m *Manager) Get(ctx context.Context, rawURL, cacheKey string) (image.Image, error) {
	if cacheKey == "" {
		cacheKey = rawURL
	}

	m.mu.RLock()
	img, ok := m.memory[cacheKey]
	m.mu.RUnlock()
	if ok {
		return img, nil
	}

	v, err, _ := m.group.Do(cacheKey, func() (any, error) {
		data, err := m.load(ctx, rawURL, cacheKey)
		if err != nil {
			return nil, err
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ccerrors.NewImageError(rawURL, fmt.Errorf("decode: %w", err))
		}
		m.mu.Lock()
		m.memory[cacheKey] = decoded
		m.mu.Unlock()
		return decoded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

func (m *Manager) load(ctx context.Context, rawURL, cacheKey string) ([]byte, error) {
	if data, ok := m.readDisk(cacheKey); ok {
		m.log.Debug("image cache hit", "url", rawURL)
		return data, nil
	}

	data, err := m.download(ctx, rawURL)
	if err != nil {
		return nil, ccerrors.NewImageError(rawURL, err)
	}
	if err := m.writeDisk(cacheKey, data); err != nil {
		m.log.Warn("image cache write failed", "url", rawURL, "error", err.Error())
	}
	return data, nil
}

func (m *Manager) download(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "file":
		return os.ReadFile(u.Path)
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxImageBytes)
	}
	return data, nil
}

func (m *Manager) cachePath(cacheKey string) string {
	sum := sha256.Sum256([]byte(cacheKey))
	return filepath.Join(m.cacheDir, hex.EncodeToString(sum[:]))
}

func (m *Manager) readDisk(cacheKey string) ([]byte, bool) {
	if m.cacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(m.cachePath(cacheKey))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (m *Manager) writeDisk(cacheKey string, data []byte) error {
	if m.cacheDir == "" {
		return nil
	}
	path := m.cachePath(cacheKey)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

var _ Fetcher = (*Manager)(nil)
