package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore/memoryengine"
)

func Test_Dispatcher_SendCommand_InvokesHandlerWithFreshSession(t *testing.T) {
	// arrange
	dispatcher, opened := givenDispatcher(t)
	handler := &spyCommandHandler{result: shell.Success(shell.Unit{})}
	require.NoError(t, shell.RegisterCommand[testCommand](dispatcher, handler))

	// act
	first, err1 := shell.SendCommand(context.Background(), dispatcher, testCommand{PercentCompleted: 10})
	second, err2 := shell.SendCommand(context.Background(), dispatcher, testCommand{PercentCompleted: 20})

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first.IsSuccess)
	assert.True(t, second.IsSuccess)
	assert.Equal(t, []testCommand{{PercentCompleted: 10}, {PercentCompleted: 20}}, handler.calls)
	assert.Equal(t, 2, *opened, "each request gets its own session")
	assert.NotSame(t, handler.sessions[0], handler.sessions[1])
}

func Test_Dispatcher_SendCommand_ReturnsResultUnchanged(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)
	handler := &spyCommandHandler{result: shell.Failure[shell.Unit]("ToDo item not found")}
	shell.MustRegisterCommand[testCommand](dispatcher, handler)

	// act
	result, err := shell.SendCommand(context.Background(), dispatcher, testCommand{})

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, "ToDo item not found", result.Error)
}

func Test_Dispatcher_SendCommand_ValidationFailure_SkipsHandler(t *testing.T) {
	// arrange
	dispatcher, opened := givenDispatcher(t)
	handler := &spyCommandHandler{result: shell.Success(shell.Unit{})}
	shell.MustRegisterCommand[testCommand](
		dispatcher,
		handler,
		shell.NewPercentValidator[testCommand](),
		shell.ValidatorFunc[testCommand](func(testCommand) []shell.FieldFailure {
			return []shell.FieldFailure{{PropertyName: "Other", ErrorMessage: "other rule"}}
		}),
	)

	// act
	_, err := shell.SendCommand(context.Background(), dispatcher, testCommand{PercentCompleted: 150})

	// assert
	var validationErr *shell.ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []shell.FieldFailure{
		{PropertyName: "PercentCompleted", ErrorMessage: shell.MsgPercentOutOfRange},
		{PropertyName: "Other", ErrorMessage: "other rule"},
	}, validationErr.Failures)
	assert.Empty(t, handler.calls)
	assert.Zero(t, *opened)
}

func Test_Dispatcher_SendCommand_NoHandler(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)

	// act
	_, err := shell.SendCommand(context.Background(), dispatcher, testCommand{})

	// assert
	assert.ErrorIs(t, err, shell.ErrNoHandlerRegistered)
}

func Test_Dispatcher_RegisterCommand_Twice_IsRejected(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)
	require.NoError(t, shell.RegisterCommand[testCommand](dispatcher, &spyCommandHandler{}))

	// act
	err := shell.RegisterCommand[testCommand](dispatcher, &spyCommandHandler{})

	// assert
	assert.ErrorIs(t, err, shell.ErrHandlerAlreadyRegistered)
	assert.Panics(t, func() {
		shell.MustRegisterCommand[testCommand](dispatcher, &spyCommandHandler{})
	})
}

func Test_Dispatcher_RegisterCommand_NilHandler(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)

	// act
	err := shell.RegisterCommand[testCommand](dispatcher, nil)

	// assert
	assert.ErrorIs(t, err, shell.ErrNilHandler)
}

func Test_Dispatcher_SendQuery_ReturnsHandlerResult(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)
	items := []core.ToDoItem{givenValidItem()}
	shell.MustRegisterQuery[testQuery, []core.ToDoItem](dispatcher, &stubQueryHandler{items: items})

	// act
	result, err := shell.SendQuery[[]core.ToDoItem](context.Background(), dispatcher, testQuery{})

	// assert
	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.Equal(t, items, result.Value)
}

func Test_Dispatcher_SendQuery_WrongResultType(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)
	shell.MustRegisterQuery[testQuery, []core.ToDoItem](dispatcher, &stubQueryHandler{})

	// act
	_, err := shell.SendQuery[*core.ToDoItem](context.Background(), dispatcher, testQuery{})

	// assert
	assert.ErrorIs(t, err, shell.ErrHandlerResultTypeMismatch)
}

func Test_Dispatcher_SendQuery_HandlerFault_IsReturned(t *testing.T) {
	// arrange
	dispatcher, _ := givenDispatcher(t)
	fault := errors.New("connection lost")
	shell.MustRegisterQuery[testQuery, []core.ToDoItem](dispatcher, &stubQueryHandler{err: fault})

	// act
	_, err := shell.SendQuery[[]core.ToDoItem](context.Background(), dispatcher, testQuery{})

	// assert
	assert.ErrorIs(t, err, fault)
}

func givenDispatcher(t *testing.T) (*shell.Dispatcher, *int) {
	t.Helper()

	store := memoryengine.NewToDoStore()
	opened := 0

	dispatcher := shell.NewDispatcher(func() shell.ToDoSession {
		opened++
		return store.NewSession()
	})

	return dispatcher, &opened
}

type testCommand struct {
	PercentCompleted int `validate:"min=0,max=100"`
}

func (testCommand) CommandType() string {
	return "TestCommand"
}

type spyCommandHandler struct {
	result   shell.Result[shell.Unit]
	calls    []testCommand
	sessions []shell.ToDoSession
}

func (h *spyCommandHandler) Handle(_ context.Context, session shell.ToDoSession, command testCommand) (shell.Result[shell.Unit], error) {
	h.calls = append(h.calls, command)
	h.sessions = append(h.sessions, session)

	return h.result, nil
}

type testQuery struct{}

func (testQuery) QueryType() string {
	return "TestQuery"
}

type stubQueryHandler struct {
	items []core.ToDoItem
	err   error
}

func (h *stubQueryHandler) Handle(_ context.Context, _ shell.ToDoSession, _ testQuery) (shell.Result[[]core.ToDoItem], error) {
	if h.err != nil {
		return shell.Result[[]core.ToDoItem]{}, h.err
	}

	return shell.Success(h.items), nil
}
