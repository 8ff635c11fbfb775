package grid

import (
	"strings"
	"sync"
	"time"

	"github.com/odvcencio/gridkit/pkg/clipboard"
	"github.com/odvcencio/gridkit/pkg/logging"
)

// ErrClipboardUnavailable is returned when no clipboard write path
// exists. Copy failures are logged and swallowed, never surfaced.
var ErrClipboardUnavailable = clipboard.ErrUnavailable

// Serialize converts a selection to tab-separated text. Rows appear in
// data-source order regardless of selection click order; within a row,
// selected columns appear in column order with raw (unformatted) values
// joined by tabs. Rows are joined by newlines with no trailing newline.
func Serialize(selection CellSet, src Source) string {
	if selection.Len() == 0 {
		return ""
	}

	cols := src.Columns()
	var lines []string
	for r := 0; r < src.RowCount(); r++ {
		rowID := src.RowID(r)
		var fields []string
		for _, col := range cols {
			if !selection.Has(Coord{RowID: rowID, ColumnID: col.ID}) {
				continue
			}
			value, _ := src.Value(rowID, col.ID)
			fields = append(fields, value)
		}
		if fields != nil {
			lines = append(lines, strings.Join(fields, "\t"))
		}
	}
	return strings.Join(lines, "\n")
}

// Copier writes selections to the clipboard. Copy is the engine's only
// asynchronous operation: the write runs off the event loop, and on
// success the copied-cells echo is replaced to drive a transient
// highlight. Failures leave the previous echo untouched.
type Copier struct {
	clip     clipboard.Clipboard
	logger   *logging.Logger
	debounce time.Duration

	mu     sync.Mutex
	copied CellSet
	timer  *time.Timer

	// OnCopied, if set, runs after every successful copy with the
	// just-copied set. Called from the copy goroutine; hosts typically
	// post a message back to their event loop here.
	OnCopied func(CellSet)
}

// NewCopier creates a copier. debounce is the quiet period AutoCopy
// waits for before writing; logger may be nil.
func NewCopier(clip clipboard.Clipboard, debounce time.Duration, logger *logging.Logger) *Copier {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Copier{
		clip:     clip,
		logger:   logger,
		debounce: debounce,
	}
}

// CopiedCells returns the last successfully copied selection, or nil.
func (c *Copier) CopiedCells() CellSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// Copy serializes and writes the selection synchronously. An empty
// selection is a no-op. On failure the error is logged and returned;
// the previous copied-cells echo is preserved.
func (c *Copier) Copy(selection CellSet, src Source) error {
	if selection.Len() == 0 {
		return nil
	}
	if c.clip == nil || !c.clip.Available() {
		c.logger.Warn(logging.CategoryClipboard, "copy_skipped", "clipboard unavailable", nil)
		return ErrClipboardUnavailable
	}

	text := Serialize(selection, src)
	if err := c.clip.Write(text); err != nil {
		c.logger.Warn(logging.CategoryClipboard, "copy_failed", err.Error(), map[string]any{
			"cells": selection.Len(),
		})
		return err
	}

	copied := selection.Clone()
	c.mu.Lock()
	c.copied = copied
	c.mu.Unlock()

	c.logger.Info(logging.CategoryClipboard, "copy", "", map[string]any{
		"cells": selection.Len(),
		"bytes": len(text),
	})
	if c.OnCopied != nil {
		c.OnCopied(copied)
	}
	return nil
}

// CopyAsync performs Copy on a separate goroutine. Errors are already
// logged and swallowed inside Copy; the caller sees nothing.
func (c *Copier) CopyAsync(selection CellSet, src Source) {
	if selection.Len() == 0 {
		return
	}
	snapshot := selection.Clone()
	go func() {
		_ = c.Copy(snapshot, src)
	}()
}

// AutoCopy schedules a copy after the debounce period, replacing any
// pending schedule. Rapid selection changes during a drag coalesce into
// a single clipboard write of the final selection.
func (c *Copier) AutoCopy(selection CellSet, src Source) {
	if selection.Len() == 0 {
		return
	}
	snapshot := selection.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		_ = c.Copy(snapshot, src)
	})
}

// Stop cancels any pending auto-copy.
func (c *Copier) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
