// Package rawdata locates the "raw" capture folder that belongs to a video
// and reads the recording date encoded in its name or contents.
//
// All listings are taken in lexicographic name order so results do not
// depend on the order the operating system happens to return entries in.
package rawdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mydehq/stampname/internal/matcher"
)

// Locator searches the immediate sub-directories of Root
type Locator struct {
	Fs       afero.Fs
	Root     string
	SelfName string
}

// New creates a Locator for root
func New(fs afero.Fs, root, selfName string) *Locator {
	return &Locator{Fs: fs, Root: root, SelfName: selfName}
}

// Find returns the first child directory whose folded name contains key and
// does not mention the tool's own name. An empty key matches the first
// eligible directory.
func (l *Locator) Find(key string) (string, bool, error) {
	// afero.ReadDir returns entries sorted by name
	entries, err := afero.ReadDir(l.Fs, l.Root)
	if err != nil {
		return "", false, fmt.Errorf("failed to list %s: %w", l.Root, err)
	}

	for _, e := range entries {
		if !isDir(l.Fs, l.Root, e) {
			continue
		}
		name := matcher.Fold(e.Name())
		if matcher.ContainsSelf(name, l.SelfName) {
			continue
		}
		if strings.Contains(name, key) {
			return filepath.Join(l.Root, e.Name()), true, nil
		}
	}
	return "", false, nil
}

// ExtractDate walks folder depth first and returns the first date found in
// a name. At each level file names are checked before directory names, then
// the sub-directories are descended in order.
func (l *Locator) ExtractDate(folder string) (year, month, day string, ok bool, err error) {
	entries, err := afero.ReadDir(l.Fs, folder)
	if err != nil {
		return "", "", "", false, fmt.Errorf("failed to read raw folder %s: %w", folder, err)
	}

	var files, dirs, descend []string
	for _, e := range entries {
		switch {
		case e.IsDir():
			dirs = append(dirs, e.Name())
			descend = append(descend, e.Name())
		case isDir(l.Fs, folder, e):
			// Linked directories are matched by name but never entered.
			dirs = append(dirs, e.Name())
		default:
			files = append(files, e.Name())
		}
	}

	for _, group := range [][]string{files, dirs} {
		for _, name := range group {
			if y, m, d, found := matcher.FindDate(name); found {
				return y, m, d, true, nil
			}
		}
	}

	for _, name := range descend {
		y, m, d, found, err := l.ExtractDate(filepath.Join(folder, name))
		if err != nil || found {
			return y, m, d, found, err
		}
	}
	return "", "", "", false, nil
}

// isDir follows symlinks so a linked directory counts as a directory
func isDir(fs afero.Fs, parent string, info os.FileInfo) bool {
	if info.IsDir() {
		return true
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := fs.Stat(filepath.Join(parent, info.Name()))
	return err == nil && target.IsDir()
}
