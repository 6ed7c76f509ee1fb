package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/features/command/createtodo"
	"github.com/AntonStoeckl/todolist-go/app/features/command/deletetodo"
	"github.com/AntonStoeckl/todolist-go/app/features/command/updatepercent"
	"github.com/AntonStoeckl/todolist-go/app/features/command/updatetodo"
	"github.com/AntonStoeckl/todolist-go/app/features/query/alltodos"
	"github.com/AntonStoeckl/todolist-go/app/features/query/incomingtodos"
	"github.com/AntonStoeckl/todolist-go/app/features/query/todobyid"
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	paramID      = "id"
	paramPercent = "percent"
	queryFilter  = "filter"

	// segmentIncoming and segmentDone are fixed path segments that share a position with a parameter.
	segmentIncoming = "incoming"
	segmentDone     = "done"
)

// Messages for input that can't be turned into a request at all.
const (
	MsgInvalidID      = "Id is not a valid UUID"
	MsgInvalidPercent = "Percent must be a whole number"
	MsgInvalidBody    = "Request body is not a valid ToDo item"
	MsgUnknownFilter  = "Unknown date filter"
)

// Property names reported for input that can't be parsed.
const (
	propertyID               = "ID"
	propertyPercentCompleted = "PercentCompleted"
	propertyFilter           = "Filter"
	propertyBody             = "Body"
)

// ToDoEndpoints holds the gin handlers of the /api/todo resource.
type ToDoEndpoints struct {
	dispatcher *shell.Dispatcher
}

// NewToDoEndpoints creates the endpoints on top of a fully registered dispatcher.
func NewToDoEndpoints(dispatcher *shell.Dispatcher) *ToDoEndpoints {
	return &ToDoEndpoints{dispatcher: dispatcher}
}

// Register mounts all endpoints on the group, which is expected to be /api/todo.
func (e *ToDoEndpoints) Register(group *gin.RouterGroup) {
	group.GET("", e.GetAll)
	group.GET("/:"+paramID, e.GetSpecific)
	group.POST("", e.Create)
	group.PUT("/:"+paramID, e.Update)
	group.PATCH("/:"+paramID+"/:"+paramPercent, e.UpdatePercent)
	group.DELETE("/:"+paramID, e.Delete)
}

// GetAll handles GET /api/todo.
func (e *ToDoEndpoints) GetAll(c *gin.Context) {
	result, err := shell.SendQuery[[]core.ToDoItem](c.Request.Context(), e.dispatcher, alltodos.BuildQuery())
	respondQuery(c, result, err, isNilSlice[core.ToDoItem])
}

// GetSpecific handles GET /api/todo/{id}. GET /api/todo/incoming is served by GetIncoming.
func (e *ToDoEndpoints) GetSpecific(c *gin.Context) {
	if c.Param(paramID) == segmentIncoming {
		e.GetIncoming(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := shell.SendQuery[*core.ToDoItem](c.Request.Context(), e.dispatcher, todobyid.BuildQuery(id))
	respondQuery(c, result, err, isNilPointer[core.ToDoItem])
}

// GetIncoming handles GET /api/todo/incoming?filter=...
// A missing filter means no filter.
func (e *ToDoEndpoints) GetIncoming(c *gin.Context) {
	filter, parseErr := core.ParseDateFilter(c.Query(queryFilter))
	if parseErr != nil {
		_ = c.Error(shell.NewValidationFailedError(propertyFilter, MsgUnknownFilter))
		return
	}

	result, err := shell.SendQuery[[]core.ToDoItem](c.Request.Context(), e.dispatcher, incomingtodos.BuildQuery(filter))
	respondQuery(c, result, err, isNilSlice[core.ToDoItem])
}

// Create handles POST /api/todo.
func (e *ToDoEndpoints) Create(c *gin.Context) {
	item, ok := parseItem(c)
	if !ok {
		return
	}

	result, err := shell.SendCommand(c.Request.Context(), e.dispatcher, createtodo.BuildCommand(item))
	respondCommand(c, result, err)
}

// Update handles PUT /api/todo/{id}. The id of the path wins over the one in the body.
func (e *ToDoEndpoints) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, ok := parseItem(c)
	if !ok {
		return
	}

	result, err := shell.SendCommand(c.Request.Context(), e.dispatcher, updatetodo.BuildCommand(id, item))
	respondCommand(c, result, err)
}

// UpdatePercent handles PATCH /api/todo/{id}/{percent} and PATCH /api/todo/{id}/done.
func (e *ToDoEndpoints) UpdatePercent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var command updatepercent.Command

	if rawPercent := c.Param(paramPercent); rawPercent == segmentDone {
		command = updatepercent.BuildDoneCommand(id)
	} else {
		percent, err := strconv.Atoi(rawPercent)
		if err != nil {
			_ = c.Error(shell.NewValidationFailedError(propertyPercentCompleted, MsgInvalidPercent))
			return
		}

		command = updatepercent.BuildCommand(id, percent)
	}

	result, err := shell.SendCommand(c.Request.Context(), e.dispatcher, command)
	respondCommand(c, result, err)
}

// Delete handles DELETE /api/todo/{id}.
func (e *ToDoEndpoints) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := shell.SendCommand(c.Request.Context(), e.dispatcher, deletetodo.BuildCommand(id))
	respondCommand(c, result, err)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		_ = c.Error(shell.NewValidationFailedError(propertyID, MsgInvalidID))
		return uuid.Nil, false
	}

	return id, true
}

func parseItem(c *gin.Context) (core.ToDoItem, bool) {
	var item core.ToDoItem
	if err := readJSON(c.Request.Body, &item); err != nil {
		_ = c.Error(shell.NewValidationFailedError(propertyBody, MsgInvalidBody))
		return core.ToDoItem{}, false
	}

	return item, true
}
