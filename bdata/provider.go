package bdata

import (
	"context"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"git.thinkinpower.net/cardcheck/data"
	"git.thinkinpower.net/cardcheck/file"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// ErrNoDataDir is returned when a mapping is written without a data directory.
var ErrNoDataDir = errors.New("data dir not configured")

var mappingFileMu sync.Mutex

type fileEventListener func(file.FileEvent)

func isMappingFile(path string) bool {
	return filepath.Base(path) == data.BrandNameFileName
}

// LoadDir reads every brand name mapping file under dir into store.
func LoadDir(store BrandNameStore, dir string) error {
	var (
		filepaths []string
		err       error
	)
	if filepaths, err = file.SearchDir(dir, isMappingFile); err != nil {
		return errors.Wrapf(err, "search brand name files in %s", dir)
	}
	for _, path := range filepaths {
		if err = loadFile(store, path); err != nil {
			return err
		}
	}
	logger.Infof("loaded %d brand names from %s", store.Len(), dir)
	return nil
}

// loadFile replaces whatever path contributed before; on a repeated brand
// the last line wins.
func loadFile(store BrandNameStore, path string) error {
	lines, err := read(path)
	if err != nil {
		return err
	}
	labels := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, err := parse(line)
		if err != nil {
			logger.Warnf("skip line in %s: %s", path, err)
			continue
		}
		labels[key] = value
	}
	store.Replace(path, labels)
	return nil
}

// CreateBrandNameMapping appends brand=name to the mapping file in dir and
// reloads that file into store.
func CreateBrandNameMapping(store BrandNameStore, dir, brand, name string) error {
	if dir == "" {
		return ErrNoDataDir
	}
	mappingFileMu.Lock()
	defer mappingFileMu.Unlock()

	path := filepath.Join(dir, data.BrandNameFileName)
	var (
		f   *os.File
		err error
	)
	if f, err = os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644); err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	line := brand + "=" + name + "\n"
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		last := make([]byte, 1)
		if _, err = f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			line = "\n" + line
		}
	}
	if _, err = f.WriteString(line); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return loadFile(store, path)
}

// Watcher reloads brand name files when they are created or written.
type Watcher struct {
	store     BrandNameStore
	dir       string
	watcher   *fsnotify.Watcher
	listeners []fileEventListener
}

// NewWatcher watches dir and every directory below it.
func NewWatcher(store BrandNameStore, dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	w := &Watcher{store: store, dir: dir, watcher: watcher}
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.addWatchDir(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}
	return w, nil
}

func (w *Watcher) addWatchDir(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	return nil
}

// AddFileListener registers a callback run after a file has been reloaded.
// Listeners must be added before Run.
func (w *Watcher) AddFileListener(listener fileEventListener) {
	w.listeners = append(w.listeners, listener)
}

// Run handles file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("watching brand name directory %s panic: %v, %s", w.dir, err, string(debug.Stack()))
		}
	}()
	defer func() {
		if err := w.watcher.Close(); err != nil {
			logger.Error(err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("watch %s error: %s", w.dir, err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	var e file.FileEvent
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err = w.addWatchDir(event.Name); err != nil {
				logger.Error(err)
			}
			return
		}
		e = file.FileEvent{Filepath: event.Name, FileCreated: true}
	} else if event.Has(fsnotify.Write) {
		e = file.FileEvent{Filepath: event.Name, FileCreated: false}
	} else {
		return
	}
	if !isMappingFile(e.Filepath) {
		logger.Debugf("ignore file: %s", e.Filepath)
		return
	}

	logger.WithFields(logger.Fields{"file": e.Filepath, "created": e.FileCreated}).Info("reload brand names")
	if err := loadFile(w.store, e.Filepath); err != nil {
		logger.Errorf("reload brand names error: %s", err)
		return
	}
	for _, l := range w.listeners {
		l(e)
	}
}
