package cqlresult

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlresult/frame"
)

func TestSchemaChangeProjection(t *testing.T) {
	h := New()
	change := &frame.SchemaChange{
		ChangeType: frame.SchemaChangeCreated,
		Target:     frame.SchemaTargetTable,
		Keyspace:   "ks",
		Object:     "users",
	}

	nonErr := classify(t, h, &QueryResponse{Response: &frame.Result{Body: change}})

	got, ok := nonErr.SchemaChange()
	require.True(t, ok)
	require.Equal(t, change, got)

	// The sibling projection must report absence.
	_, ok = nonErr.SetKeyspace()
	require.False(t, ok)
}

func TestSetKeyspaceProjection(t *testing.T) {
	h := New()
	nonErr := classify(t, h, &QueryResponse{Response: &frame.Result{Body: &frame.SetKeyspace{Keyspace: "analytics"}}})

	got, ok := nonErr.SetKeyspace()
	require.True(t, ok)
	require.Equal(t, "analytics", got.Keyspace)

	_, ok = nonErr.SchemaChange()
	require.False(t, ok)
}

func TestProjectionsAbsentForEveryOtherVariant(t *testing.T) {
	responses := []frame.Response{
		&frame.Result{Body: &frame.Void{}},
		&frame.Result{Body: &frame.Rows{}},
		&frame.Result{Body: &frame.Prepared{ID: []byte{0x01}}},
		&frame.Ready{},
		&frame.Supported{},
		&frame.Event{Type: frame.EventTopologyChange, Change: "NEW_NODE"},
		&frame.AuthChallenge{},
		&frame.AuthSuccess{},
	}

	h := New()
	for _, resp := range responses {
		nonErr := classify(t, h, &QueryResponse{Response: resp})

		_, ok := nonErr.SchemaChange()
		require.False(t, ok, "SchemaChange must be absent for %T", resp)
		_, ok = nonErr.SetKeyspace()
		require.False(t, ok, "SetKeyspace must be absent for %T", resp)
	}
}

func TestProjectionsDoNotConsume(t *testing.T) {
	// Scenario: SET_KEYSPACE result; the projection reads it, then paged
	// assembly still yields no rows and a finished cursor.
	h := New()
	nonErr := classify(t, h, &QueryResponse{Response: &frame.Result{Body: &frame.SetKeyspace{Keyspace: "ks"}}})

	keyspace, ok := nonErr.SetKeyspace()
	require.True(t, ok)
	require.Equal(t, "ks", keyspace.Keyspace)

	result, paging, err := h.Assemble(nonErr, testCoordinator())
	require.NoError(t, err)

	_, ok = result.Rows()
	require.False(t, ok)
	require.True(t, paging.Finished())
}
