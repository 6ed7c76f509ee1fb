package shell_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

type itemRequest struct {
	Item core.ToDoItem
}

type percentRequest struct {
	PercentCompleted int `validate:"min=0,max=100"`
}

func Test_ToDoItemValidator_ValidItem_ReturnsNoFailures(t *testing.T) {
	// arrange
	validator := shell.NewToDoItemValidator(func(r itemRequest) core.ToDoItem { return r.Item })

	// act
	failures := validator.Validate(itemRequest{Item: givenValidItem()})

	// assert
	assert.Empty(t, failures)
}

func Test_ToDoItemValidator_CollectsAllFailures(t *testing.T) {
	// arrange
	validator := shell.NewToDoItemValidator(func(r itemRequest) core.ToDoItem { return r.Item })
	item := core.ToDoItem{ID: uuid.New(), PercentCompleted: 101}

	// act
	failures := validator.Validate(itemRequest{Item: item})

	// assert
	assert.Equal(t, []shell.FieldFailure{
		{PropertyName: "TimeOfExpiry", ErrorMessage: shell.MsgDateRequired},
		{PropertyName: "Title", ErrorMessage: shell.MsgTitleRequired},
		{PropertyName: "PercentCompleted", ErrorMessage: shell.MsgPercentOutOfRange},
	}, failures)
}

func Test_ToDoItemValidator_CollectsAllFailures_WhitespaceTitle(t *testing.T) {
	// arrange
	validator := shell.NewToDoItemValidator(func(r itemRequest) core.ToDoItem { return r.Item })
	item := core.ToDoItem{ID: uuid.New(), Title: "   ", PercentCompleted: -1}

	// act
	failures := validator.Validate(itemRequest{Item: item})

	// assert
	assert.Equal(t, []shell.FieldFailure{
		{PropertyName: "TimeOfExpiry", ErrorMessage: shell.MsgDateRequired},
		{PropertyName: "Title", ErrorMessage: shell.MsgTitleRequired},
		{PropertyName: "PercentCompleted", ErrorMessage: shell.MsgPercentOutOfRange},
	}, failures)
}

func Test_ToDoItemValidator_BlankTitle_IsRequired(t *testing.T) {
	testCases := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "spaces", title: "   "},
		{name: "tabs and newlines", title: "\t\n \r"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			validator := shell.NewToDoItemValidator(func(r itemRequest) core.ToDoItem { return r.Item })
			item := givenValidItem()
			item.Title = tc.title

			// act
			failures := validator.Validate(itemRequest{Item: item})

			// assert
			assert.Equal(t, []shell.FieldFailure{{PropertyName: "Title", ErrorMessage: shell.MsgTitleRequired}}, failures)
		})
	}
}

func Test_ToDoItemValidator_TitleLength(t *testing.T) {
	testCases := []struct {
		name      string
		title     string
		wantValid bool
	}{
		{name: "exactly 100 characters", title: strings.Repeat("a", 100), wantValid: true},
		{name: "100 multi-byte characters", title: strings.Repeat("ä", 100), wantValid: true},
		{name: "101 characters", title: strings.Repeat("a", 101), wantValid: false},
		{name: "padded with spaces", title: "  buy milk  ", wantValid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			validator := shell.NewToDoItemValidator(func(r itemRequest) core.ToDoItem { return r.Item })
			item := givenValidItem()
			item.Title = tc.title

			// act
			failures := validator.Validate(itemRequest{Item: item})

			// assert
			if tc.wantValid {
				assert.Empty(t, failures)
				return
			}

			require.Len(t, failures, 1)
			assert.Equal(t, shell.FieldFailure{PropertyName: "Title", ErrorMessage: shell.MsgTitleTooLong}, failures[0])
		})
	}
}

func Test_PercentValidator_Bounds(t *testing.T) {
	testCases := []struct {
		percent   int
		wantValid bool
	}{
		{percent: -1, wantValid: false},
		{percent: 0, wantValid: true},
		{percent: 100, wantValid: true},
		{percent: 101, wantValid: false},
	}

	validator := shell.NewPercentValidator[percentRequest]()

	for _, tc := range testCases {
		// act
		failures := validator.Validate(percentRequest{PercentCompleted: tc.percent})

		// assert
		if tc.wantValid {
			assert.Empty(t, failures, "percent %d", tc.percent)
			continue
		}

		assert.Equal(t,
			[]shell.FieldFailure{{PropertyName: "PercentCompleted", ErrorMessage: shell.MsgPercentOutOfRange}},
			failures,
			"percent %d", tc.percent,
		)
	}
}

func Test_StructValidator_UnknownMessage_FallsBackToValidatorText(t *testing.T) {
	// arrange
	validator := shell.NewStructValidator[percentRequest](map[string]string{}, nil)

	// act
	failures := validator.Validate(percentRequest{PercentCompleted: 200})

	// assert
	require.Len(t, failures, 1)
	assert.Equal(t, "PercentCompleted", failures[0].PropertyName)
	assert.Contains(t, failures[0].ErrorMessage, "'max' tag")
}

func Test_ValidationFailedError_Error_ListsAllFailures(t *testing.T) {
	// arrange
	err := &shell.ValidationFailedError{Failures: []shell.FieldFailure{
		{PropertyName: "Title", ErrorMessage: shell.MsgTitleRequired},
		{PropertyName: "TimeOfExpiry", ErrorMessage: shell.MsgDateRequired},
	}}

	// act
	message := err.Error()

	// assert
	assert.Equal(t, "validation failed: Title: You have to add the title; TimeOfExpiry: Date cannot be empty", message)
}

func givenValidItem() core.ToDoItem {
	return core.ToDoItem{
		ID:               uuid.New(),
		TimeOfExpiry:     core.ToTimeOfExpiry(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		Title:            "Buy milk",
		PercentCompleted: 0,
	}
}
