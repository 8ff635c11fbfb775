package runtime

import (
	"testing"

	"github.com/odvcencio/gridkit/pkg/ui/backend"
)

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(10, 5)

	style := backend.DefaultStyle().Bold(true)
	buf.Set(3, 2, 'x', style)

	cell := buf.Get(3, 2)
	if cell.Rune != 'x' {
		t.Errorf("Get(3,2).Rune = %q, want 'x'", cell.Rune)
	}
	if cell.Style != style {
		t.Errorf("Get(3,2).Style = %v, want %v", cell.Style, style)
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 4)

	// Should not panic.
	buf.Set(-1, 0, 'a', backend.DefaultStyle())
	buf.Set(0, -1, 'a', backend.DefaultStyle())
	buf.Set(4, 0, 'a', backend.DefaultStyle())
	buf.Set(0, 4, 'a', backend.DefaultStyle())

	if got := buf.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}
}

func TestBufferSetString(t *testing.T) {
	buf := NewBuffer(10, 2)
	buf.SetString(1, 0, "hello", backend.DefaultStyle())

	want := "hello"
	for i, r := range want {
		if got := buf.Get(1+i, 0).Rune; got != r {
			t.Errorf("cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestBufferSetStringWideRunes(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.SetString(0, 0, "日本", backend.DefaultStyle())

	if got := buf.Get(0, 0).Rune; got != '日' {
		t.Errorf("cell 0 = %q, want 日", got)
	}
	if got := buf.Get(1, 0).Rune; got != ' ' {
		t.Errorf("continuation cell = %q, want space", got)
	}
	if got := buf.Get(2, 0).Rune; got != '本' {
		t.Errorf("cell 2 = %q, want 本", got)
	}
}

func TestBufferSetStringClips(t *testing.T) {
	buf := NewBuffer(5, 1)
	buf.SetString(3, 0, "abcdef", backend.DefaultStyle())

	if got := buf.Get(4, 0).Rune; got != 'b' {
		t.Errorf("last cell = %q, want 'b'", got)
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	buf := NewBuffer(8, 4)
	buf.ClearDirty()

	if buf.IsDirty() {
		t.Fatal("buffer dirty after ClearDirty")
	}

	buf.Set(2, 1, 'a', backend.DefaultStyle())
	if !buf.IsDirty() {
		t.Fatal("buffer not dirty after Set")
	}
	if buf.DirtyCount() != 1 {
		t.Errorf("DirtyCount = %d, want 1", buf.DirtyCount())
	}

	// Writing the same content again should not re-dirty.
	buf.ClearDirty()
	buf.Set(2, 1, 'a', backend.DefaultStyle())
	if buf.IsDirty() {
		t.Error("identical write marked cell dirty")
	}
}

func TestBufferForEachDirtyCell(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.ClearDirty()
	buf.Set(1, 1, 'a', backend.DefaultStyle())
	buf.Set(2, 3, 'b', backend.DefaultStyle())

	visited := map[[2]int]rune{}
	buf.ForEachDirtyCell(func(x, y int, cell Cell) {
		visited[[2]int{x, y}] = cell.Rune
	})

	if len(visited) != 2 {
		t.Fatalf("visited %d cells, want 2", len(visited))
	}
	if visited[[2]int{1, 1}] != 'a' || visited[[2]int{2, 3}] != 'b' {
		t.Errorf("unexpected dirty cells: %v", visited)
	}
}

func TestBufferResizePreservesContent(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Set(1, 1, 'z', backend.DefaultStyle())

	buf.Resize(8, 8)
	if got := buf.Get(1, 1).Rune; got != 'z' {
		t.Errorf("after grow, Get(1,1) = %q, want 'z'", got)
	}

	buf.Resize(2, 2)
	if got := buf.Get(1, 1).Rune; got != 'z' {
		t.Errorf("after shrink, Get(1,1) = %q, want 'z'", got)
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(6, 4)
	style := backend.DefaultStyle().Reverse(true)
	buf.Fill(Rect{1, 1, 3, 2}, '#', style)

	if got := buf.Get(1, 1).Rune; got != '#' {
		t.Errorf("Get(1,1) = %q, want '#'", got)
	}
	if got := buf.Get(3, 2).Rune; got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}
	if got := buf.Get(4, 1).Rune; got == '#' {
		t.Error("fill leaked outside region")
	}
}
