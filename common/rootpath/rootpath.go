package rootpath

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	mu   sync.Mutex
	dirs []string
)

// ResolveFrom walks up the given number of parent directories from the file
// and returns the resulting path. The path is returned whether or not it
// exists on disk.
func ResolveFrom(file string, levels int) string {
	dir, err := filepath.Abs(file)
	if err != nil {
		dir = file
	}
	for i := 0; i < levels; i++ {
		dir = filepath.Dir(dir)
	}
	return dir
}

// Resolve walks up the given number of parent directories from the calling
// source file and returns the resulting path.
func Resolve(levels int) string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		wd, _ := os.Getwd()
		return wd
	}
	return ResolveFrom(file, levels)
}

// Register appends the directory to the fixture search path.
func Register(dir string) {
	mu.Lock()
	defer mu.Unlock()
	for _, v := range dirs {
		if v == dir {
			return
		}
	}
	dirs = append(dirs, dir)
}

// Dirs returns a copy of the registered search path.
func Dirs() []string {
	mu.Lock()
	defer mu.Unlock()
	cp := make([]string, len(dirs))
	copy(cp, dirs)
	return cp
}

// Locate searches the registered directories for the relative path and
// returns the first match that exists.
func Locate(rel string) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	for _, dir := range dirs {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
