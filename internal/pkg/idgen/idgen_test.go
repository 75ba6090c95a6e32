package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("kingdom")
	assert.Equal(t, "kingdom_1", gen.Generate())
	assert.Equal(t, "kingdom_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("session").Generate()
	require.True(t, strings.HasPrefix(id, "session_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "session_"))
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("session").Generate())
}
