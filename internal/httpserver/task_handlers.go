package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ins-V/simple-todo-list/internal/auth"
	"github.com/Ins-V/simple-todo-list/models"
)

// ListTasks returns all tasks owned by the authenticated user. The optional
// `completed` query parameter filters by completion state; when it is absent
// no filter applies, so completed=false selects only unfinished tasks.
func (s *Server) ListTasks(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	var completed *bool
	if raw := c.Query("completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid completed filter"})
			return
		}
		completed = &v
	}

	tasks, err := s.Tasks.ListByUserID(c.Request.Context(), u.ID, completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task owned by the authenticated user. A task
// owned by someone else is reported as not found, never as forbidden.
func (s *Server) GetTask(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	t, err := s.Tasks.GetByID(c.Request.Context(), id, u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// CreateTask inserts a new task owned by the authenticated user.
func (s *Server) CreateTask(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	var in TaskCreateInput
	if err := c.ShouldBindBodyWithJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	t, err := s.Tasks.Create(c.Request.Context(), &models.Task{
		Name:        in.Name,
		Description: in.Description,
		UserID:      u.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateTask overwrites every mutable field of an owned task. Partial
// payloads are rejected by binding, not merged.
func (s *Server) UpdateTask(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	var in TaskUpdateInput
	if err := c.ShouldBindBodyWithJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	t, err := s.Tasks.Update(c.Request.Context(), &models.Task{
		ID:          id,
		Name:        *in.Name,
		Description: *in.Description,
		Completed:   *in.Completed,
		UserID:      u.ID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// DeleteTask removes an owned task. Deleting the same task twice yields not
// found on the second call.
func (s *Server) DeleteTask(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	if err := s.Tasks.Delete(c.Request.Context(), id, u.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID parses a positive numeric path parameter.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
