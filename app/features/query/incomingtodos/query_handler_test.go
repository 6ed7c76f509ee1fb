package incomingtodos_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/features/query/incomingtodos"
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	. "github.com/AntonStoeckl/todolist-go/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_FilterCounts(t *testing.T) {
	// arrange
	store := GivenStoreWith(
		GivenItem(t, "due today", FixedNow),
		GivenItem(t, "due tomorrow", FixedNow.AddDate(0, 0, 1)),
		GivenItem(t, "due in 5 days", FixedNow.AddDate(0, 0, 5)),
		GivenItem(t, "due in 25 days", FixedNow.AddDate(0, 0, 25)),
		GivenItem(t, "due in 2 months", FixedNow.AddDate(0, 2, 0)),
	)
	handler := incomingtodos.NewQueryHandler(incomingtodos.WithClock(func() time.Time { return FixedNow }))

	testCases := []struct {
		filter core.DateFilter
		want   int
	}{
		{filter: core.Today, want: 1},
		{filter: core.Tomorrow, want: 1},
		{filter: core.ThisWeek, want: 3},
		{filter: core.ThisMonth, want: 4},
		{filter: core.None, want: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.filter.String(), func(t *testing.T) {
			// act
			result, err := handler.Handle(context.Background(), store.NewSession(), incomingtodos.BuildQuery(tc.filter))

			// assert
			require.NoError(t, err)
			assert.True(t, result.IsSuccess)
			assert.Len(t, result.Value, tc.want)
		})
	}
}

func Test_QueryHandler_Handle_EmptyStore(t *testing.T) {
	// arrange
	handler := incomingtodos.NewQueryHandler(incomingtodos.WithClock(func() time.Time { return FixedNow }))

	// act
	result, err := handler.Handle(context.Background(), GivenStoreWith().NewSession(), incomingtodos.BuildQuery(core.Today))

	// assert
	require.NoError(t, err)
	assert.NotNil(t, result.Value)
	assert.Empty(t, result.Value)
}

func Test_Validator_RejectsUnknownFilter(t *testing.T) {
	// arrange
	validator := incomingtodos.NewValidator()

	// act
	failures := validator.Validate(incomingtodos.BuildQuery(core.DateFilter(9)))
	valid := validator.Validate(incomingtodos.BuildQuery(core.ThisMonth))

	// assert
	assert.Equal(t, []shell.FieldFailure{{PropertyName: "Filter", ErrorMessage: "Unknown date filter"}}, failures)
	assert.Empty(t, valid)
}
