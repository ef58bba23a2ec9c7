// Package renamer plans and applies the date-stamped renames of a folder.
//
// A run has three passes over a listing captured once at the start:
// Pass 1 classifies every video as dated (legacy name or raw folder) or
// undated, Pass 2 names the dated files after their own dates and Pass 3
// gives the undated files consecutive free days starting at the median of
// all dates found. Planning touches nothing on disk; Apply performs the
// renames in plan order.
//
// Concurrent runs against the same folder are not supported: a free name is
// only checked, never reserved, so another writer can take it between the
// check and the rename.
package renamer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mydehq/stampname/internal/calendar"
	"github.com/mydehq/stampname/internal/rawdata"
	"github.com/mydehq/stampname/internal/types"
)

// Renamer orchestrates the file renaming process
type Renamer struct {
	fs      afero.Fs
	cfg     *types.Config
	dryRun  bool
	events  types.EventHandler
	confirm func([]types.RenameOperation) bool
}

// New creates a Renamer working on fs with the formats and self name from cfg
func New(fs afero.Fs, cfg *types.Config) *Renamer {
	return &Renamer{fs: fs, cfg: cfg}
}

// WithDryRun plans and reports renames without applying them
func (r *Renamer) WithDryRun() *Renamer {
	r.dryRun = true
	return r
}

// WithEvents sets the progress event handler
func (r *Renamer) WithEvents(h types.EventHandler) *Renamer {
	r.events = h
	return r
}

// WithConfirm sets a callback asked once before any rename is applied.
// Returning false leaves every file untouched.
func (r *Renamer) WithConfirm(fn func([]types.RenameOperation) bool) *Renamer {
	r.confirm = fn
	return r
}

// Execute plans and applies the renames for dir. The returned operations
// cover every scanned file. When undated files exist but no real date was
// found, the dated renames are still applied and ErrNoFallbackDate is
// returned alongside the operations.
func (r *Renamer) Execute(ctx context.Context, dir string) ([]types.RenameOperation, error) {
	plan, err := r.Plan(ctx, dir)
	if err != nil {
		return nil, err
	}

	if len(plan.Classification.Files) == 0 {
		return nil, nil
	}

	if r.confirm != nil && !r.dryRun && plan.Pending() > 0 {
		if !r.confirm(plan.Operations) {
			plan.cancel()
			r.emit(types.EventWarning, "Rename cancelled, no files were changed")
			return plan.Operations, nil
		}
	}

	ops, err := r.Apply(ctx, plan)
	if err != nil {
		return ops, err
	}

	if !plan.HasFallback && len(plan.Classification.Undated) > 0 {
		return ops, types.ErrNoFallbackDate{Undated: len(plan.Classification.Undated)}
	}
	return ops, nil
}

// Plan runs the three passes and returns the renames to perform, without
// touching the filesystem.
func (r *Renamer) Plan(ctx context.Context, dir string) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	files, err := r.scanFiles(absDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		r.emit(types.EventWarning, fmt.Sprintf("No video files found in %s", absDir))
		return &Plan{Dir: absDir, Classification: &Classification{Dated: map[string]Resolution{}}}, nil
	}

	locator := rawdata.New(r.fs, absDir, r.cfg.SelfName)

	r.emit(types.EventInfo, "PASS 1: Collecting real dates...")
	class, err := r.collect(locator, files)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Dir: absDir, Classification: class}
	plan.Fallback, plan.HasFallback = calendar.Median(class.Pool)
	if plan.HasFallback {
		r.emit(types.EventProgress, fmt.Sprintf("Fallback date: %s (median of %d dates)", plan.Fallback, len(class.Pool)))
	}

	ns := newNamespace(r.fs, absDir)

	if err := r.planDated(plan, ns); err != nil {
		return nil, err
	}
	if err := r.planFallback(plan, ns); err != nil {
		return nil, err
	}

	plan.addSkipped()
	return plan, nil
}

// Apply performs the pending renames of plan in order. The first failure
// aborts the run; renames already done stay done.
func (r *Renamer) Apply(ctx context.Context, plan *Plan) ([]types.RenameOperation, error) {
	if err := ctx.Err(); err != nil {
		return plan.Operations, err
	}

	r.emit(types.EventInfo, "PASS 2: Renaming dated files...")
	fallbackStarted := false

	for i := range plan.Operations {
		op := &plan.Operations[i]
		if op.Status != types.StatusPending {
			continue
		}
		if op.Source == types.SourceFallback && !fallbackStarted {
			fallbackStarted = true
			r.emit(types.EventInfo, "PASS 3: Assigning fallback median + incremental dates...")
		}

		target := filepath.Base(op.TargetPath)

		if r.dryRun {
			r.emit(types.EventInfo, fmt.Sprintf("%s: %s → %s", op.Source.Label(), filepath.Base(op.SourcePath), target))
			continue
		}

		exists, err := afero.Exists(r.fs, op.TargetPath)
		if err != nil {
			op.Status = types.StatusFailed
			op.Error = err.Error()
			return plan.Operations, fmt.Errorf("failed to check %s: %w", target, err)
		}
		if exists {
			collision := types.ErrTargetExists{Source: op.SourcePath, Target: op.TargetPath}
			op.Status = types.StatusFailed
			op.Error = collision.Error()
			return plan.Operations, collision
		}

		if err := r.fs.Rename(op.SourcePath, op.TargetPath); err != nil {
			op.Status = types.StatusFailed
			op.Error = err.Error()
			return plan.Operations, fmt.Errorf("failed to rename %s: %w", filepath.Base(op.SourcePath), err)
		}

		op.Status = types.StatusSuccess
		r.emit(types.EventSuccess, fmt.Sprintf("%s → %s", op.Source.Label(), target))
	}

	return plan.Operations, nil
}

func (r *Renamer) emit(t types.EventType, msg string) {
	if r.events != nil {
		r.events(types.Event{Type: t, Message: msg})
	}
}
