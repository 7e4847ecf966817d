package config

import (
	"errors"
	"os"

	"github.com/knadh/koanf/providers/file"
)

// Watch calls fn with a freshly loaded configuration whenever one of the
// default config files changes. Only files that exist when Watch is called
// are watched. The returned stop function ends watching.
func Watch(fn func(NavigationConfig, error)) (stop func(), err error) {
	return WatchFrom(fn, getConfigPaths()...)
}

// WatchFrom is Watch over an explicit list of files, reloaded with LoadFrom.
func WatchFrom(fn func(NavigationConfig, error), paths ...string) (stop func(), err error) {
	var watched []*file.File
	stop = func() {
		for _, f := range watched {
			_ = f.Unwatch()
		}
	}

	for _, path := range paths {
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			stop()
			return nil, err
		}
		f := file.Provider(path)
		err := f.Watch(func(_ any, err error) {
			if err != nil {
				fn(NavigationConfig{}, err)
				return
			}
			fn(LoadFrom(paths...))
		})
		if err != nil {
			stop()
			return nil, err
		}
		watched = append(watched, f)
	}
	return stop, nil
}
