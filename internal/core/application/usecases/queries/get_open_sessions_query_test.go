package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOpenSessionsQuery_Valid(t *testing.T) {
	query := queries.NewGetOpenSessionsQuery()
	require.NoError(t, query.Validate())
}

func TestGetOpenSessionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOpenSessionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOpenSessionsQueryIsNotConstructed)
}
