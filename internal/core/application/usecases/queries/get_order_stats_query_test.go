package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderStatsQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrderStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}
