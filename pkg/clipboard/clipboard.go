// Package clipboard provides access to the system clipboard through the
// platform's clipboard utilities.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"
	"sync"
)

// ErrUnavailable is returned when no clipboard utility can be found, or
// when none of the probed commands succeeds.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes text to a clipboard.
type Clipboard interface {
	// Available reports whether the clipboard can be used at all.
	// Callers should treat false the way a browser treats an unfocused
	// document: skip the copy, do not error out.
	Available() bool
	Write(text string) error
	Read() (string, error)
}

// System is a Clipboard backed by the platform's clipboard commands
// (pbcopy/pbpaste, xclip, xsel, wl-clipboard, clip.exe).
type System struct {
	readers   [][]string
	writers   [][]string
	available bool
}

// NewSystem probes the PATH for known clipboard utilities and returns a
// clipboard that shells out to the first one that works.
func NewSystem() *System {
	readers := [][]string{
		{"pbpaste"},
		{"xclip", "-selection", "clipboard", "-o"},
		{"xsel", "--clipboard", "--output"},
		{"wl-paste", "--no-newline"},
		{"wl-paste"},
		{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard"},
	}
	writers := [][]string{
		{"pbcopy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
		{"clip.exe"},
	}

	available := false
	seen := make(map[string]struct{})
	commands := append([][]string{}, readers...)
	commands = append(commands, writers...)
	for _, cmd := range commands {
		if len(cmd) == 0 {
			continue
		}
		name := cmd[0]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if _, err := exec.LookPath(name); err == nil {
			available = true
		}
	}

	return &System{
		readers:   readers,
		writers:   writers,
		available: available,
	}
}

// Available reports whether any clipboard utility was found on the PATH.
func (c *System) Available() bool {
	if c == nil {
		return false
	}
	return c.available
}

// Write sends text to the first clipboard writer that succeeds.
func (c *System) Write(text string) error {
	if c == nil || !c.available {
		return ErrUnavailable
	}
	for _, args := range c.writers {
		if len(args) == 0 {
			continue
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return ErrUnavailable
}

// Read returns text from the first clipboard reader that succeeds.
// Trailing newlines added by the utilities are stripped.
func (c *System) Read() (string, error) {
	if c == nil || !c.available {
		return "", ErrUnavailable
	}
	for _, args := range c.readers {
		if len(args) == 0 {
			continue
		}
		cmd := exec.Command(args[0], args[1:]...)
		out, err := cmd.Output()
		if err != nil {
			continue
		}
		return strings.TrimRight(string(out), "\r\n"), nil
	}
	return "", ErrUnavailable
}

// Memory is an in-process Clipboard for tests and headless environments.
type Memory struct {
	mu      sync.Mutex
	content string
	writes  int
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Available always returns true.
func (m *Memory) Available() bool { return true }

// Write stores text in memory.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = text
	m.writes++
	return nil
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content, nil
}

// Writes returns the number of Write calls, for asserting on debounce
// behavior in tests.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Unavailable is a Clipboard that always refuses, mirroring a document
// without clipboard permission.
type Unavailable struct{}

// Available always returns false.
func (Unavailable) Available() bool { return false }

// Write always fails with ErrUnavailable.
func (Unavailable) Write(string) error { return ErrUnavailable }

// Read always fails with ErrUnavailable.
func (Unavailable) Read() (string, error) { return "", ErrUnavailable }

var (
	_ Clipboard = (*System)(nil)
	_ Clipboard = (*Memory)(nil)
	_ Clipboard = Unavailable{}
)
