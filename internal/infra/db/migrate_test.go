//go:build unit

package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.Equal(t, "migrations/001_initial_schema.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestInitialSchemaScopesOverlapToDate(t *testing.T) {
	body, err := migrationFS.ReadFile("migrations/001_initial_schema.sql")
	require.NoError(t, err)

	schema := string(body)
	start := strings.Index(schema, "CONSTRAINT bookings_no_overlap")
	require.NotEqual(t, -1, start)
	constraint := schema[start:]
	constraint = constraint[:strings.Index(constraint, ")\n")]

	assert.Contains(t, constraint, "master_id WITH =")
	assert.Contains(t, constraint, "date WITH =")
}
