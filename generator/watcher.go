package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/lv2ttl/plugin"
)

// WatcherConfig configures the file watcher
type WatcherConfig struct {
	// Root is the directory to watch
	Root string

	// DebounceDelay is how long to wait for more changes before regenerating
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// WatchEvent reports the outcome for one changed description
type WatchEvent struct {
	// Path is the description path relative to the watched root
	Path string

	// Operation is the type of change
	Operation WatchOperation

	// Result is the written document (nil for deletes and failures)
	Result *Result

	// Error if regeneration failed
	Error error
}

// WatchOperation indicates the type of file operation
type WatchOperation string

const (
	OpCreate WatchOperation = "create"
	OpModify WatchOperation = "modify"
	OpDelete WatchOperation = "delete"
)

// Watcher regenerates manifests when description files change
type Watcher struct {
	config    WatcherConfig
	generator *Generator
	watcher   *fsnotify.Watcher
	logger    *slog.Logger

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation

	// Content hashes of the last generated descriptions
	hashMu sync.RWMutex
	hashes map[string]string

	events chan WatchEvent
}

// NewWatcher creates a watcher that regenerates through g
func NewWatcher(g *Generator, config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = g.logger
	}

	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:    config,
		generator: g,
		watcher:   fsw,
		logger:    logger,
		pending:   make(map[string]fsnotify.Op),
		hashes:    make(map[string]string),
		events:    make(chan WatchEvent, 100),
	}, nil
}

// Events returns the channel of watch events. It is closed once the
// context passed to Start is done.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start adds the directory watches and processes changes until ctx is done
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		w.watcher.Close()
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		"root", w.config.Root,
		"debounce", w.config.DebounceDelay)

	return nil
}

// GenerateExisting generates every description below the root and records
// their content so unchanged files are skipped later. A description that
// fails is reported as an event with its error and does not stop the pass.
func (w *Watcher) GenerateExisting(ctx context.Context) ([]Result, error) {
	sources, err := Expand([]string{w.config.Root}, w.generator.exclude)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		relPath := w.relPath(source)
		hash, err := fileHash(source)
		if err == nil {
			var res Result
			res, err = w.generator.Generate(ctx, source)
			if err == nil {
				w.setHash(relPath, hash)
				results = append(results, res)
				continue
			}
		}

		w.logger.Warn("Failed to generate manifest",
			"path", relPath,
			"error", err)
		w.sendEvent(WatchEvent{Path: relPath, Operation: OpCreate, Error: err})
	}
	return results, nil
}

func (w *Watcher) setHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

func (w *Watcher) getHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

func (w *Watcher) forget(path string) bool {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	_, ok := w.hashes[path]
	delete(w.hashes, path)
	return ok
}

func (w *Watcher) relPath(path string) string {
	rel, err := filepath.Rel(w.config.Root, path)
	if err != nil {
		return path
	}
	return rel
}

func skipDir(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".") && filepath.Base(path) != "."
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	defer w.watcher.Close()

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !plugin.IsDescriptionFile(path) || excluded(path, w.generator.exclude) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Description change detected",
		"path", w.relPath(path),
		"op", event.Op.String())
}

// handleNewDirectory watches a new directory tree and queues the
// descriptions already inside it, which may have been written before the
// watch was added.
func (w *Watcher) handleNewDirectory(path string) {
	if skipDir(path) {
		return
	}
	if err := w.addWatchesRecursive(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
		return
	}

	existing, err := Expand([]string{path}, w.generator.exclude)
	if err != nil {
		return
	}
	w.pendingMu.Lock()
	for _, source := range existing {
		w.pending[source] = fsnotify.Create
	}
	w.pendingMu.Unlock()
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := maps.Clone(w.pending)
	clear(w.pending)
	w.pendingMu.Unlock()

	for path := range toProcess {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path)
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	relPath := w.relPath(path)
	event := WatchEvent{Path: relPath}

	hash, err := fileHash(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Removed or renamed away; the generated manifest is left in place.
		if w.forget(relPath) {
			event.Operation = OpDelete
			w.sendEvent(event)
		}
		return
	}
	if err != nil {
		event.Operation = OpModify
		event.Error = err
		w.sendEvent(event)
		return
	}

	oldHash, hadHash := w.getHash(relPath)
	if hadHash && oldHash == hash {
		return
	}

	event.Operation = OpModify
	if !hadHash {
		event.Operation = OpCreate
	}

	result, err := w.generator.Generate(ctx, path)
	if err != nil {
		w.logger.Warn("Failed to regenerate manifest",
			"path", relPath,
			"error", err)
		event.Error = err
		w.sendEvent(event)
		return
	}

	w.setHash(relPath, hash)
	event.Result = &result
	w.sendEvent(event)
}

func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path)
	}
}

func fileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
