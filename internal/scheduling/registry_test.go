package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrderAndLookup(t *testing.T) {
	all := Algorithms()
	require.Len(t, all, 4)

	ids := make([]string, len(all))
	for i, a := range all {
		ids[i] = a.ID()
	}
	assert.Equal(t, []string{"greedy-first-available", "balanced-load", "round-robin", "batch-scheduler"}, ids)

	for _, id := range ids {
		algo, ok := Get(id)
		require.True(t, ok)
		assert.Equal(t, id, algo.ID())
		assert.NotEmpty(t, algo.Name())
		assert.NotEmpty(t, algo.Description())
	}

	_, ok := Get("does-not-exist")
	assert.False(t, ok)
}

func TestRegistryConfigSchemaDiscovery(t *testing.T) {
	batch, ok := Get("batch-scheduler")
	require.True(t, ok)

	schema := batch.ConfigSchema()
	require.NotEmpty(t, schema)

	byKey := map[string]ConfigField{}
	for _, field := range schema {
		assert.NotEmpty(t, field.Label)
		assert.Contains(t, []string{"number", "string", "boolean", "select"}, field.Type)
		byKey[field.Key] = field
	}
	assert.Contains(t, byKey, "rooms")
	assert.Contains(t, byKey, "slotStepMinutes")
	assert.Contains(t, byKey, "requireAllRounds")
	assert.Equal(t, 15, byKey["slotStepMinutes"].Default)
}
