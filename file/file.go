package file

import (
	"os"
	"path/filepath"
)

type FileEvent struct {
	Filepath    string
	FileCreated bool
}

// SearchDir walks dir recursively and returns the full path of every regular
// file accepted by match.
func SearchDir(dir string, match func(path string) bool) ([]string, error) {
	var (
		entries []os.DirEntry
		err     error
	)
	if entries, err = os.ReadDir(dir); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			var paths []string
			if paths, err = SearchDir(path, match); err != nil {
				return nil, err
			}
			result = append(result, paths...)
		} else if entry.Type().IsRegular() && match(path) {
			result = append(result, path)
		}
	}
	return result, nil
}
