// Package database provides shared test database helpers backed by a
// PostgreSQL testcontainer.
package database

import (
	"context"
	"testing"

	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Ent's schema DSL cannot express the partial unique indexes, so they are
	// created directly after the schema build.
	err := database.CreatePartialUniqueIndexes(ctx, db)
	require.NoError(t, err)

	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
