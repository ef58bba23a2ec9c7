package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mydehq/stampname/internal/calendar"
	"github.com/mydehq/stampname/internal/matcher"
	"github.com/mydehq/stampname/internal/rawdata"
	"github.com/mydehq/stampname/internal/types"
)

// Resolution is the real date found for a file in Pass 1
type Resolution struct {
	File   types.MediaFile
	Source types.DateSource
	Date   calendar.Date
	Title  string
	Folder string // raw folder the date came from, if any
}

// Classification is the immutable result of Pass 1
type Classification struct {
	Files   []types.MediaFile     // every scanned video, sorted by path
	Dated   map[string]Resolution // keyed by MediaFile.Path
	Undated []types.MediaFile
	Skipped []types.MediaFile // stems naming the tool itself
	Pool    []calendar.Date   // every resolved date, in file order
}

// scanFiles returns the supported video files directly inside root, sorted
// by path
func (r *Renamer) scanFiles(root string) ([]types.MediaFile, error) {
	entries, err := afero.ReadDir(r.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var files []types.MediaFile
	for _, entry := range entries {
		if entry.IsDir() || r.isLinkedDir(root, entry) {
			continue
		}
		if !r.cfg.HasFormat(entry.Name()) {
			continue
		}
		stem, ext := matcher.SplitExt(entry.Name())
		files = append(files, types.MediaFile{
			Path: filepath.Join(root, entry.Name()),
			Stem: stem,
			Ext:  ext,
		})
	}
	return files, nil
}

func (r *Renamer) isLinkedDir(root string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	info, err := r.fs.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

// collect is Pass 1
func (r *Renamer) collect(locator *rawdata.Locator, files []types.MediaFile) (*Classification, error) {
	class := &Classification{
		Files: files,
		Dated: make(map[string]Resolution),
	}

	for _, f := range files {
		if matcher.ContainsSelf(f.Stem, r.cfg.SelfName) {
			class.Skipped = append(class.Skipped, f)
			r.emit(types.EventProgress, fmt.Sprintf("Skipping own file: %s", f.Name()))
			continue
		}

		res, ok, err := resolve(locator, f, r.cfg.SelfName)
		if err != nil {
			return nil, err
		}
		if !ok {
			class.Undated = append(class.Undated, f)
			r.emit(types.EventProgress, fmt.Sprintf("No date found: %s", f.Name()))
			continue
		}

		class.Dated[f.Path] = res
		class.Pool = append(class.Pool, res.Date)
		r.emit(types.EventProgress, fmt.Sprintf("%s: %s (%s)", res.Source.Label(), f.Name(), res.Date))
	}

	return class, nil
}

// resolve tries the legacy name first, then the raw data folder. A false
// result with a nil error means the file is undated.
func resolve(locator *rawdata.Locator, f types.MediaFile, selfName string) (Resolution, bool, error) {
	if legacy, ok := matcher.MatchLegacy(f.Stem); ok {
		date, err := calendar.Parse(legacy.Year, legacy.Month, legacy.Day)
		if err != nil {
			return Resolution{}, false, withFile(err, f)
		}
		return Resolution{
			File:   f,
			Source: types.SourceLegacy,
			Date:   date,
			Title:  matcher.CleanTitle(legacy.Title),
		}, true, nil
	}

	folder, ok, err := locator.Find(matcher.SearchKey(f.Stem, selfName))
	if err != nil || !ok {
		return Resolution{}, false, err
	}

	y, m, d, ok, err := locator.ExtractDate(folder)
	if err != nil || !ok {
		return Resolution{}, false, err
	}

	date, err := calendar.Parse(y, m, d)
	if err != nil {
		return Resolution{}, false, withFile(err, f)
	}
	return Resolution{
		File:   f,
		Source: types.SourceRawFolder,
		Date:   date,
		Title:  matcher.CleanTitle(f.Stem),
		Folder: folder,
	}, true, nil
}

func withFile(err error, f types.MediaFile) error {
	var invalid types.ErrInvalidDate
	if errors.As(err, &invalid) {
		invalid.File = f.Name()
		return invalid
	}
	return err
}
