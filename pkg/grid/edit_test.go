package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persistRecorder struct {
	calls []struct {
		rowID, columnID, value string
	}
	err   error
	panic bool
}

func (p *persistRecorder) persist(rowID, columnID, value string) error {
	p.calls = append(p.calls, struct {
		rowID, columnID, value string
	}{rowID, columnID, value})
	if p.panic {
		panic("persistence exploded")
	}
	return p.err
}

func TestConfirmInvokesPersistOnceWithBufferedValue(t *testing.T) {
	rec := &persistRecorder{}
	ed := NewEditor(rec.persist, nil)

	ed.Begin("row-1", "age", "5")
	ed.SetValue("7")
	ed.Confirm()

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "row-1", rec.calls[0].rowID)
	assert.Equal(t, "age", rec.calls[0].columnID)
	assert.Equal(t, "7", rec.calls[0].value)
	assert.False(t, ed.Active())
	assert.Empty(t, ed.Value())
}

func TestCancelDiscardsWithoutPersisting(t *testing.T) {
	rec := &persistRecorder{}
	ed := NewEditor(rec.persist, nil)

	ed.Begin("row-1", "age", "5")
	ed.SetValue("7")
	ed.Cancel()

	assert.Empty(t, rec.calls)
	assert.False(t, ed.Active())
	assert.Nil(t, ed.Cell())
}

func TestOnlyOneCellEditsAtATime(t *testing.T) {
	rec := &persistRecorder{}
	ed := NewEditor(rec.persist, nil)

	ed.Begin("row-1", "name", "Ada")
	ed.SetValue("Ada L")
	// Starting the next edit commits the previous buffer, same as blur.
	ed.Begin("row-2", "name", "Bo")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "Ada L", rec.calls[0].value)
	require.NotNil(t, ed.Cell())
	assert.Equal(t, Coord{RowID: "row-2", ColumnID: "name"}, *ed.Cell())
	assert.Equal(t, "Bo", ed.Value())
}

func TestFailingPersistStillClearsEditState(t *testing.T) {
	rec := &persistRecorder{err: errors.New("db locked")}
	ed := NewEditor(rec.persist, nil)

	ed.Begin("row-1", "age", "36")
	ed.Confirm()

	assert.False(t, ed.Active(), "edit state must clear even when persist fails")
}

func TestPanickingPersistStillClearsEditState(t *testing.T) {
	rec := &persistRecorder{panic: true}
	ed := NewEditor(rec.persist, nil)

	ed.Begin("row-1", "age", "36")
	require.NotPanics(t, func() { ed.Confirm() })

	assert.False(t, ed.Active())
}

func TestConfirmWithoutPersistCallback(t *testing.T) {
	ed := NewEditor(nil, nil)

	ed.Begin("row-1", "age", "36")
	ed.SetValue("37")
	ed.Confirm()

	assert.False(t, ed.Active())
}

func TestIdleTransitionsAreNoOps(t *testing.T) {
	rec := &persistRecorder{}
	ed := NewEditor(rec.persist, nil)

	ed.SetValue("x")
	ed.Confirm()
	ed.Cancel()

	assert.Empty(t, rec.calls)
	assert.False(t, ed.Active())
	assert.Empty(t, ed.Value())
}
