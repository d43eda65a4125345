package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/navigation"
	"github.com/alexisbeaulieu97/contentcards/internal/readstatus"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	"github.com/alexisbeaulieu97/contentcards/internal/tracking"
)

const testFeed = `surface: inbox://home
inbox:
  heading: What's new
  unread_enabled: true
cards:
  - id: spring-sale
    type: small_image
    title: Spring sale
    body: Up to 40% off outdoor gear.
    dismiss: simple
    buttons:
      - id: shop-now
        text: Shop now
        action_url: https://shop.example.com/spring
  - id: old-news
    type: small_image
    title: Old news
`

type cliEnv struct {
	dir        string
	configPath string
	feedPath   string
	statusPath string
	journal    string
}

// setupCLI isolates the user directories and writes a config pointing every
// path into a temp dir.
func setupCLI(t *testing.T, feedBody string) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	env := cliEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yml"),
		feedPath:   filepath.Join(dir, "feed.yaml"),
		statusPath: filepath.Join(dir, "read-status.json"),
		journal:    filepath.Join(dir, "events.jsonl"),
	}
	if feedBody != "" {
		require.NoError(t, os.WriteFile(env.feedPath, []byte(feedBody), 0o644))
	}

	cfg := "feed: " + env.feedPath + "\n" +
		"read-status-path: " + env.statusPath + "\n" +
		"journal-path: " + env.journal + "\n" +
		"cache-dir: " + filepath.Join(dir, "images") + "\n" +
		"open-urls: false\n"
	require.NoError(t, os.WriteFile(env.configPath, []byte(cfg), 0o644))
	return env
}

func execute(t *testing.T, env cliEnv, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestRenderCommandPrintsInbox(t *testing.T) {
	env := setupCLI(t, testFeed)

	out, err := execute(t, env, "render", "--no-images", "--width", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "What's new")
	assert.Contains(t, out, "Spring sale")
	assert.Contains(t, out, "Shop now")
	assert.Contains(t, out, "Old news")
	assert.Contains(t, out, "2 unread")
}

func TestRenderCommandHidesDismissedCards(t *testing.T) {
	env := setupCLI(t, testFeed)

	store, err := readstatus.NewStore(env.statusPath)
	require.NoError(t, err)
	require.NoError(t, store.RecordDismissal(context.Background(), "old-news"))

	out, err := execute(t, env, "render", "--no-images", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring sale")
	assert.NotContains(t, out, "Old news")
}

func TestRenderCommandCapacityFlag(t *testing.T) {
	env := setupCLI(t, testFeed)

	out, err := execute(t, env, "--capacity", "1", "render", "--no-images", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring sale")
	assert.NotContains(t, out, "Old news")
}

func TestRenderCommandFeedFailure(t *testing.T) {
	env := setupCLI(t, "")

	out, err := execute(t, env, "render", "--no-images", "--width", "80")
	require.Error(t, err)
	assert.Contains(t, out, "Couldn't load cards")
	assert.Contains(t, err.Error(), "loading cards")
}

func TestRenderCommandRequiresFeed(t *testing.T) {
	env := setupCLI(t, testFeed)
	require.NoError(t, os.WriteFile(env.configPath, []byte("open-urls: false\n"), 0o644))

	_, err := execute(t, env, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func seedJournal(t *testing.T, path string, recs ...tracking.Record) {
	t.Helper()
	journal, err := tracking.NewJournal(path)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, journal.Write(rec))
	}
}

func TestEventsCommandTable(t *testing.T) {
	env := setupCLI(t, "")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedJournal(t, env.journal,
		tracking.Record{ID: "1", Surface: "home", CardID: "a", Type: events.TypeDisplay, At: at},
		tracking.Record{ID: "2", Surface: "home", CardID: "a", ActionID: "shop-now", Type: events.TypeInteract, At: at.Add(time.Minute)},
		tracking.Record{ID: "3", Surface: "home", CardID: "b", Type: events.TypeDismiss, At: at.Add(2 * time.Minute)},
	)

	out, err := execute(t, env, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "shop-now")
	assert.Contains(t, out, "dismiss")

	out, err = execute(t, env, "events", "--type", "interact")
	require.NoError(t, err)
	assert.Contains(t, out, "shop-now")
	assert.NotContains(t, out, "dismiss")
}

func TestEventsCommandJSONAndLimit(t *testing.T) {
	env := setupCLI(t, "")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedJournal(t, env.journal,
		tracking.Record{ID: "1", CardID: "a", Type: events.TypeDisplay, At: at},
		tracking.Record{ID: "2", CardID: "b", Type: events.TypeDisplay, At: at},
		tracking.Record{ID: "3", CardID: "c", Type: events.TypeDisplay, At: at},
	)

	out, err := execute(t, env, "events", "--json", "--limit", "2")
	require.NoError(t, err)

	var recs []tracking.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].CardID)
	assert.Equal(t, "c", recs[1].CardID)
}

func TestEventsCommandEmptyAndInvalidType(t *testing.T) {
	env := setupCLI(t, "")

	out, err := execute(t, env, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "No card events recorded yet.")

	_, err = execute(t, env, "events", "--type", "click")
	require.Error(t, err)
}

func TestResetCommand(t *testing.T) {
	env := setupCLI(t, "")
	ctx := context.Background()

	store, err := readstatus.NewStore(env.statusPath)
	require.NoError(t, err)
	require.NoError(t, store.RecordDismissal(ctx, "a"))
	require.NoError(t, store.SetReadStatus(ctx, "b", true))

	out, err := execute(t, env, "reset", "a", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "a: forgotten")
	assert.Contains(t, out, "zzz: no saved state")

	reloaded, err := readstatus.NewStore(env.statusPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, reloaded.IDs())

	out, err = execute(t, env, "reset", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Forgot 1 card(s).")

	_, err = execute(t, env, "reset")
	require.Error(t, err)
}

func TestPolicyAndSurfaceNames(t *testing.T) {
	assert.Equal(t, state.PropagateItemsFailure, policyFromName("propagate"))
	assert.Equal(t, state.DegradeToEmpty, policyFromName("degrade"))
	assert.Equal(t, state.DegradeToEmpty, policyFromName(""), "unset policy degrades")
	assert.Equal(t, "home", surfaceName("/srv/cards/home.yaml"))
}

func TestOpenURLsSelectsOpener(t *testing.T) {
	env := setupCLI(t, testFeed)

	tests := []struct {
		name     string
		args     []string
		recorder bool
	}{
		{name: "config disables opening", recorder: true},
		{name: "flag enables opening", args: []string{"--open-urls=true"}, recorder: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			require.NoError(t, root.ParseFlags(append([]string{"--config", env.configPath}, tt.args...)))

			app, err := newAppContext(root, &rootFlags{configPath: env.configPath}, io.Discard)
			require.NoError(t, err)

			_, isRecorder := app.Opener.(*navigation.Recorder)
			assert.Equal(t, tt.recorder, isRecorder)
		})
	}
}

func TestTerminalWidthFallsBack(t *testing.T) {
	assert.Equal(t, defaultRenderWidth, terminalWidth(&bytes.Buffer{}))
}
