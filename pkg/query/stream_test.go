package query

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(events *[]any) EventWriter {
	return func(event any) error {
		*events = append(*events, event)
		return nil
	}
}

func TestStreamSingleCandidate(t *testing.T) {
	path := writeConfig(t, `["com"]`)
	client := &fakeLookuper{}

	var events []any
	state, err := StreamQueryFromText(context.Background(), client, path, collectEvents(&events), "alpha")
	require.NoError(t, err)
	assert.Equal(t, StreamCompleted, state)
	require.Len(t, events, 3)

	start, ok := events[0].(StartEvent)
	require.True(t, ok)
	assert.Equal(t, StartEvent{Type: EventStart, Total: 1}, start)

	result, ok := events[1].(ResultEvent)
	require.True(t, ok)
	assert.Equal(t, "alpha.com", result.Domain)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, 1, result.Total)
	assert.False(t, result.IsRegistered)

	complete, ok := events[2].(CompleteEvent)
	require.True(t, ok)
	assert.Equal(t, 1, complete.Total)
	assert.Equal(t, 1, complete.Completed)
	assert.Equal(t, []string{"alpha.com"}, complete.Unregistered)
}

func TestStreamOmitsRegisteredFromUnregisteredList(t *testing.T) {
	path := writeConfig(t, `["com"]`)
	client := &fakeLookuper{registered: true}

	var events []any
	state, err := StreamQueryFromText(context.Background(), client, path, collectEvents(&events), "alpha")
	require.NoError(t, err)
	assert.Equal(t, StreamCompleted, state)

	complete := events[len(events)-1].(CompleteEvent)
	assert.Empty(t, complete.Unregistered)
}

func TestStreamLookupFailureEmitsErrorEvent(t *testing.T) {
	path := writeConfig(t, `["com", "io"]`)
	client := &fakeLookuper{failOn: "alpha.io"}

	var events []any
	state, err := StreamQueryFromText(context.Background(), client, path, collectEvents(&events), "alpha")
	require.NoError(t, err)
	assert.Equal(t, StreamAborted, state)
	// Remaining candidates are never attempted.
	assert.Equal(t, []string{"alpha.com", "alpha.io"}, client.domains)

	require.Len(t, events, 3)
	errEvent, ok := events[2].(ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, 1, errEvent.Completed)
	assert.Equal(t, 2, errEvent.Total)
	assert.Contains(t, errEvent.Error, "alpha.io")
}

func TestStreamWriteFailureAbortsSilently(t *testing.T) {
	path := writeConfig(t, `["com", "io"]`)
	client := &fakeLookuper{}

	writes := 0
	write := func(any) error {
		writes++
		if writes > 1 {
			return errors.New("broken pipe")
		}
		return nil
	}

	state, err := StreamQueryFromText(context.Background(), client, path, write, "alpha")
	require.NoError(t, err)
	assert.Equal(t, StreamAborted, state)
	// The failed result write stops the stream before the second lookup.
	assert.Equal(t, []string{"alpha.com"}, client.domains)
}

func TestStreamSetupErrorsPrecedeEvents(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	var events []any
	_, err := StreamQueryFromText(context.Background(), &fakeLookuper{}, missing, collectEvents(&events), "alpha")
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
	assert.Empty(t, events)
}

func TestStreamNoFragments(t *testing.T) {
	var events []any
	_, err := StreamQueryFromText(context.Background(), &fakeLookuper{}, "unused.json", collectEvents(&events), "  \n")
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Empty(t, events)
}
