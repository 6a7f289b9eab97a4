package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// FindExecutable checks that file exists and is an executable regular file.
func FindExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in dirs, the first match
// wins.
func LookPath(fsys afero.Fs, dirs []string, file string) (string, error) {
	matches := lookPath(fsys, dirs, file, false)
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	return matches[0], nil
}

// LookPathAll returns every executable named file in dirs, in order.
func LookPathAll(fsys afero.Fs, dirs []string, file string) []string {
	return lookPath(fsys, dirs, file, true)
}

func lookPath(fsys afero.Fs, dirs []string, file string, all bool) []string {
	var out []string
	for _, dir := range dirs {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := FindExecutable(fsys, path); err == nil {
			out = append(out, path)
			if !all {
				break
			}
		}
	}
	return out
}
