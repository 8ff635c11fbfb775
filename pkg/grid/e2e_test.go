package grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/gridkit/pkg/clipboard"
	"github.com/odvcencio/gridkit/pkg/ui/backend/sim"
	"github.com/odvcencio/gridkit/pkg/ui/runtime"
	"github.com/odvcencio/gridkit/pkg/ui/terminal"
)

// End-to-end: real event loop over the simulation backend, with mouse
// and key events injected through the same conversion path a terminal
// would use.
func TestEndToEndDragSelectAndCopy(t *testing.T) {
	backend := sim.New(40, 12)
	clip := clipboard.NewMemory()

	g := New(Options{
		Source:             threeByThree(),
		Clipboard:          clip,
		MinColumnWidth:     4,
		DefaultColumnWidth: 10,
		GutterWidth:        5,
	})

	app := runtime.NewApp(runtime.AppConfig{
		Backend: backend,
		Root:    runtime.VBox(runtime.Expanded(g)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// Wait for the first frame.
	require.Eventually(t, func() bool {
		return backend.ContainsText("name") && backend.ContainsText("Ada")
	}, 2*time.Second, 10*time.Millisecond)

	// Drag a 2x3 rectangle: cell (0,1) to cell (1,3).
	backend.InjectMousePress(6, 1)
	backend.InjectMouseMove(16, 2)
	backend.InjectMouseMove(26, 2)
	backend.InjectMouseRelease(26, 2)

	require.Eventually(t, func() bool {
		return g.Selection().Cells().Len() == 6
	}, 2*time.Second, 10*time.Millisecond)

	// Copy with Ctrl-C; the clipboard gets the TSV payload.
	backend.InjectKey(terminal.KeyCtrlC, 0)
	require.Eventually(t, func() bool {
		got, _ := clip.Read()
		return got == "Ada\t36\tLondon\nBo\t41\tOslo"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestEndToEndKeyboardEditRoundTrip(t *testing.T) {
	backend := sim.New(40, 12)

	src := threeByThree()
	g := New(Options{
		Source:             src,
		Clipboard:          clipboard.NewMemory(),
		MinColumnWidth:     4,
		DefaultColumnWidth: 10,
		GutterWidth:        5,
		Persist:            src.setValue,
	})

	app := runtime.NewApp(runtime.AppConfig{
		Backend: backend,
		Root:    runtime.VBox(runtime.Expanded(g)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		return backend.ContainsText("Ada")
	}, 2*time.Second, 10*time.Millisecond)

	// Move onto (0,1) and open the editor.
	backend.InjectKey(terminal.KeyDown, 0)
	backend.InjectKey(terminal.KeyF2, 0)
	require.Eventually(t, func() bool {
		return g.Editor().Active()
	}, 2*time.Second, 10*time.Millisecond)

	backend.InjectKeyRune('!')
	backend.InjectKey(terminal.KeyEnter, 0)

	require.Eventually(t, func() bool {
		v, _ := src.Value("row-1", "name")
		return v == "Ada!"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

// setValue lets the fake source act as its own persistence target.
func (s *fakeSource) setValue(rowID, columnID, value string) error {
	row, ok := s.values[rowID]
	if !ok {
		return nil
	}
	row[columnID] = value
	return nil
}
