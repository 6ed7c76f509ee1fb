package todobyid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/features/query/todobyid"
	. "github.com/AntonStoeckl/todolist-go/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_Found(t *testing.T) {
	// arrange
	existing := GivenItem(t, "Buy milk", FixedNow)
	existing.Description = StringPtr("two liters")
	store := GivenStoreWith(existing, GivenItem(t, "Call mom", FixedNow))

	// act
	result, err := todobyid.NewQueryHandler().Handle(context.Background(), store.NewSession(), todobyid.BuildQuery(existing.ID))

	// assert
	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	require.NotNil(t, result.Value)
	assert.Equal(t, existing, *result.Value)
}

func Test_QueryHandler_Handle_NotFound(t *testing.T) {
	// arrange
	store := GivenStoreWith(GivenItem(t, "Buy milk", FixedNow))

	// act
	result, err := todobyid.NewQueryHandler().Handle(context.Background(), store.NewSession(), todobyid.BuildQuery(GivenUniqueID(t)))

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Nil(t, result.Value)
	assert.Equal(t, "ToDo item not found.", result.Error)
}
