package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewListActiveOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestListActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListActiveOrdersQueryIsNotConstructed)
}
