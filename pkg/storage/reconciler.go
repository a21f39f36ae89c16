package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"presensi/pkg/logger"
)

// RefFunc reports whether any database row references the stored filename.
type RefFunc func(subdir, name string) bool

// Reconciler watches the upload directories and reports files no database
// row references. File and DB writes are not transactional, so a failed DB
// write after a successful store leaves such a file behind; the reconciler
// only observes and logs, it never deletes.
type Reconciler struct {
	store      *Store
	referenced RefFunc
}

func NewReconciler(store *Store, referenced RefFunc) *Reconciler {
	return &Reconciler{store: store, referenced: referenced}
}

// Sweep scans the given subdirs once and returns the relative paths of
// unreferenced files.
func (r *Reconciler) Sweep(subdirs ...string) []string {
	var orphans []string
	for _, sub := range subdirs {
		entries, err := os.ReadDir(filepath.Join(r.store.BaseDir, sub))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !r.referenced(sub, e.Name()) {
				orphans = append(orphans, filepath.Join(sub, e.Name()))
				logger.Warnf("storage sweep: unreferenced file %s/%s", sub, e.Name())
			}
		}
	}
	return orphans
}

// Run sweeps once, then keeps watching the subdirs until ctx is done.
// Events are checked after a short settle delay so the matching DB write has
// a chance to land first.
func (r *Reconciler) Run(ctx context.Context, subdirs ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, sub := range subdirs {
		dir := filepath.Join(r.store.BaseDir, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	r.Sweep(subdirs...)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			name := filepath.Base(ev.Name)
			sub := filepath.Base(filepath.Dir(ev.Name))
			if name == thumbDir {
				continue
			}
			go r.checkLater(ctx, sub, name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("storage watcher: %v", err)
		}
	}
}

func (r *Reconciler) checkLater(ctx context.Context, sub, name string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(5 * time.Second):
	}
	if !r.store.Exists(name, sub) {
		return
	}
	if !r.referenced(sub, name) {
		logger.Warnf("storage sweep: unreferenced file %s/%s", sub, name)
	}
}
