package deletetodo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/features/command/deletetodo"
	. "github.com/AntonStoeckl/todolist-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	existing := GivenItem(t, "Buy milk", FixedNow)
	other := GivenItem(t, "Call mom", FixedNow)
	store := GivenStoreWith(existing, other)

	// act
	result, err := deletetodo.NewCommandHandler().Handle(
		context.Background(),
		store.NewSession(),
		deletetodo.BuildCommand(existing.ID),
	)

	// assert
	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.Nil(t, FindStored(t, store, existing.ID))
	assert.NotNil(t, FindStored(t, store, other.ID))
	assert.Equal(t, 1, store.Count())
}

func Test_CommandHandler_Handle_NotFound(t *testing.T) {
	// arrange
	store := GivenStoreWith(GivenItem(t, "Buy milk", FixedNow))

	// act
	result, err := deletetodo.NewCommandHandler().Handle(
		context.Background(),
		store.NewSession(),
		deletetodo.BuildCommand(GivenUniqueID(t)),
	)

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, "ToDo item not found", result.Error)
	assert.Equal(t, 1, store.Count())
}

func Test_CommandHandler_Handle_Twice_SecondFails(t *testing.T) {
	// arrange
	existing := GivenItem(t, "Buy milk", FixedNow)
	store := GivenStoreWith(existing)
	handler := deletetodo.NewCommandHandler()

	_, err := handler.Handle(context.Background(), store.NewSession(), deletetodo.BuildCommand(existing.ID))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(context.Background(), store.NewSession(), deletetodo.BuildCommand(existing.ID))

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, "ToDo item not found", result.Error)
}

func Test_CommandHandler_Handle_NoRowAffected_Fails(t *testing.T) {
	// arrange
	existing := GivenItem(t, "Buy milk", FixedNow)
	store := GivenStoreWith(existing)

	// act
	result, err := deletetodo.NewCommandHandler().Handle(
		context.Background(),
		ZeroRowsSession{ToDoSession: store.NewSession()},
		deletetodo.BuildCommand(existing.ID),
	)

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, "Failed to delete the ToDo", result.Error)
	assert.Equal(t, 1, store.Count())
}
