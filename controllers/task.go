package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskdesk/constants"
	"taskdesk/middleware"
	"taskdesk/models"
	"taskdesk/policy"
	"taskdesk/queries"
)

type TaskController struct {
	DB *gorm.DB
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	AssignedTo  uint   `json:"assigned_to"`
}

// CreateTask records a new task with the caller as creator. Any
// authenticated user may create and assign to anyone.
func (tc *TaskController) CreateTask(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input createTaskRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.Title == "" || input.Description == "" || input.AssignedTo == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title, description and assigned_to are required"})
		return
	}

	deadline, err := time.Parse(models.DeadlineLayout, input.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid deadline format. Use YYYY-MM-DD HH:MM:SS"})
		return
	}

	creatorID := actor.UserID
	assigneeID := input.AssignedTo
	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    deadline,
		Status:      constants.StatusPending,
		CreatedBy:   &creatorID,
		AssignedTo:  &assigneeID,
	}
	if err := tc.DB.WithContext(c.Request.Context()).Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Task created successfully"})
}

// ListTasks serves GET /tasks with the optional view query.
func (tc *TaskController) ListTasks(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	rows, err := queries.ListTasks(c.Request.Context(), tc.DB, actor, c.Query("view"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// MyTasks serves GET /my-tasks, the inbound view: work delegated to
// the caller by a superior role. Admins have no superior, so the view
// is not theirs to ask for.
func (tc *TaskController) MyTasks(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if actor.Role != constants.RoleManager && actor.Role != constants.RoleEmployee {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	rows, err := queries.ListInbound(c.Request.Context(), tc.DB, actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	AssignedTo  *uint   `json:"assigned_to"`
}

// UpdateTask applies a partial field update. Any successful edit
// resets the status to Pending: changed work voids a prior decision.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	task, found := tc.findTask(c)
	if !found {
		return
	}

	if !policy.CanEdit(actor, policy.TaskFacts{CreatorID: task.CreatedBy}) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to edit this task"})
		return
	}

	var input updateTaskRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"status": constants.StatusPending,
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Deadline != nil {
		deadline, err := time.Parse(models.DeadlineLayout, *input.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid deadline format. Use YYYY-MM-DD HH:MM:SS"})
			return
		}
		updates["deadline"] = deadline
	}
	if input.AssignedTo != nil {
		updates["assigned_to"] = *input.AssignedTo
	}

	// One statement, so the multi-field mutation commits or fails as
	// a unit.
	if err := tc.DB.WithContext(c.Request.Context()).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// DeleteTask removes a task outright. Same ownership rules as
// UpdateTask.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	task, found := tc.findTask(c)
	if !found {
		return
	}

	if !policy.CanDelete(actor, policy.TaskFacts{CreatorID: task.CreatedBy}) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this task"})
		return
	}

	if err := tc.DB.WithContext(c.Request.Context()).Delete(&models.Task{}, task.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

type approvalRequest struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

// Approval settles a task as Approved or Rejected and records the
// remark, overwriting any previous one. The route gate already limits
// callers to Admins and Managers; the policy additionally restricts
// Managers to Employee-assigned tasks.
func (tc *TaskController) Approval(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input approvalRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status, err := constants.ParseStatus(input.Status)
	if err != nil || !status.IsDecision() {
		c.JSON(http.StatusForbidden, gin.H{
			"message": fmt.Sprintf("%s cannot set status to %s here", actor.Role, input.Status),
		})
		return
	}

	task, found := tc.findTask(c)
	if !found {
		return
	}

	assigneeRole, err := queries.AssigneeRole(c.Request.Context(), tc.DB, task.AssignedTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve assignee"})
		return
	}

	facts := policy.TaskFacts{
		CreatorID:    task.CreatedBy,
		AssigneeID:   task.AssignedTo,
		AssigneeRole: assigneeRole,
	}
	if !policy.CanDecide(actor, facts) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Managers can only approve/reject Employee tasks"})
		return
	}

	updates := map[string]interface{}{
		"status": status,
		"remark": input.Remark,
	}
	if err := tc.DB.WithContext(c.Request.Context()).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Task %s successfully", status)})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus lets a task's assignee move it between Pending and
// Done.
func (tc *TaskController) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input statusRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status, err := constants.ParseStatus(input.Status)
	if err != nil || !status.IsProgress() {
		c.JSON(http.StatusForbidden, gin.H{
			"message": fmt.Sprintf("%s cannot set status to %s", actor.Role, input.Status),
		})
		return
	}

	task, found := tc.findTask(c)
	if !found {
		return
	}

	if !policy.CanSetProgress(actor, policy.TaskFacts{AssigneeID: task.AssignedTo}) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this task"})
		return
	}

	if err := tc.DB.WithContext(c.Request.Context()).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// findTask resolves the :id route param. A malformed or unknown id is
// a 404 either way; the response is written before returning false.
func (tc *TaskController) findTask(c *gin.Context) (models.Task, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return models.Task{}, false
	}

	var task models.Task
	if err := tc.DB.WithContext(c.Request.Context()).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load task"})
		}
		return models.Task{}, false
	}
	return task, true
}
