package renamer

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/mydehq/stampname/internal/calendar"
	"github.com/mydehq/stampname/internal/matcher"
	"github.com/mydehq/stampname/internal/types"
)

// Plan is the ordered list of renames computed by the three passes
type Plan struct {
	Dir            string
	Classification *Classification
	Fallback       calendar.Date
	HasFallback    bool
	Operations     []types.RenameOperation // dated, then fallback, then skipped
}

// Pending returns the number of renames still to apply
func (p *Plan) Pending() int {
	n := 0
	for _, op := range p.Operations {
		if op.Status == types.StatusPending {
			n++
		}
	}
	return n
}

func (p *Plan) cancel() {
	for i := range p.Operations {
		if p.Operations[i].Status == types.StatusPending {
			p.Operations[i].Status = types.StatusSkipped
			p.Operations[i].Error = "cancelled"
		}
	}
}

func (p *Plan) add(f types.MediaFile, source types.DateSource, date calendar.Date, title, target string) {
	p.Operations = append(p.Operations, types.RenameOperation{
		SourcePath: f.Path,
		TargetPath: filepath.Join(p.Dir, target),
		Title:      title,
		Date:       date.String(),
		Source:     source,
		Status:     types.StatusPending,
	})
}

func (p *Plan) addSkipped() {
	for _, f := range p.Classification.Skipped {
		p.Operations = append(p.Operations, types.RenameOperation{
			SourcePath: f.Path,
			Status:     types.StatusSkipped,
			Error:      "name contains the tool's own name",
		})
	}
	if p.HasFallback {
		return
	}
	for _, f := range p.Classification.Undated {
		p.Operations = append(p.Operations, types.RenameOperation{
			SourcePath: f.Path,
			Status:     types.StatusSkipped,
			Error:      "no fallback date",
		})
	}
}

// TargetName formats the canonical file name "S{Y}E{MM}{DD} - {title}{ext}"
func TargetName(date calendar.Date, title, ext string) string {
	return date.Code() + " - " + title + ext
}

// namespace answers "does this name exist?" for the target directory as it
// will look once the renames planned so far have been applied.
type namespace struct {
	fs      afero.Fs
	dir     string
	claimed map[string]bool
	vacated map[string]bool
}

func newNamespace(fs afero.Fs, dir string) *namespace {
	return &namespace{
		fs:      fs,
		dir:     dir,
		claimed: make(map[string]bool),
		vacated: make(map[string]bool),
	}
}

func (n *namespace) taken(name string) (bool, error) {
	if n.claimed[name] {
		return true, nil
	}
	if n.vacated[name] {
		return false, nil
	}
	return afero.Exists(n.fs, filepath.Join(n.dir, name))
}

func (n *namespace) move(from, to string) {
	delete(n.claimed, from)
	n.vacated[from] = true
	delete(n.vacated, to)
	n.claimed[to] = true
}

// ensureUnique searches forward one day at a time from start for a date
// whose target name is free.
func (n *namespace) ensureUnique(title, ext string, start calendar.Date) (calendar.Date, string, error) {
	date := start
	for {
		name := TargetName(date, title, ext)
		taken, err := n.taken(name)
		if err != nil {
			return calendar.Date{}, "", err
		}
		if !taken {
			return date, name, nil
		}
		if date, err = date.AddDays(1); err != nil {
			return calendar.Date{}, "", types.ErrDateOutOfRange{Title: title}
		}
	}
}

// planDated is Pass 2: every dated file starts its search at its own date
func (r *Renamer) planDated(plan *Plan, ns *namespace) error {
	for _, f := range plan.Classification.Files {
		res, ok := plan.Classification.Dated[f.Path]
		if !ok {
			continue
		}

		date, name, err := ns.ensureUnique(res.Title, f.Ext, res.Date)
		if err != nil {
			return err
		}
		ns.move(filepath.Base(f.Path), name)
		plan.add(f, res.Source, date, res.Title, name)
	}
	return nil
}

// planFallback is Pass 3: undated files in path order get strictly
// increasing free dates seeded at the median.
func (r *Renamer) planFallback(plan *Plan, ns *namespace) error {
	undated := slices.Clone(plan.Classification.Undated)
	if len(undated) == 0 {
		return nil
	}
	if !plan.HasFallback {
		return nil
	}

	slices.SortFunc(undated, func(a, b types.MediaFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	next := plan.Fallback
	for i, f := range undated {
		title := matcher.CleanTitle(f.Stem)
		date, name, err := ns.ensureUnique(title, f.Ext, next)
		if err != nil {
			return err
		}
		ns.move(filepath.Base(f.Path), name)
		plan.add(f, types.SourceFallback, date, title, name)

		if i < len(undated)-1 {
			if next, err = date.AddDays(1); err != nil {
				return types.ErrDateOutOfRange{Title: title}
			}
		}
	}
	return nil
}
