package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskmanager/models"
	"taskmanager/service"
)

// taskRequest is the input envelope for create and update. id and
// createdAt are server-assigned and never accepted from the client.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTaskResponse(task *models.Task) taskResponse {
	resp := taskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		resp.DueDate = task.DueDate.Format(models.DueDateLayout)
	}
	return resp
}

// parseTaskInput runs the validation step before any service logic:
// required fields, enum membership, date format. A failure never
// reaches the store.
func parseTaskInput(req taskRequest) (service.TaskInput, *service.ValidationError) {
	verr := &service.ValidationError{}
	input := service.TaskInput{
		Description: strings.TrimSpace(req.Description),
	}

	input.Title = strings.TrimSpace(req.Title)
	if input.Title == "" {
		verr.Add("title", "Title is required")
	}

	if strings.TrimSpace(req.Status) == "" {
		verr.Add("status", "Status is required")
	} else if status, err := models.ParseStatus(req.Status); err != nil {
		verr.Add("status", err.Error())
	} else {
		input.Status = status
	}

	if strings.TrimSpace(req.Priority) != "" {
		if priority, err := models.ParsePriority(req.Priority); err != nil {
			verr.Add("priority", err.Error())
		} else {
			input.Priority = priority
		}
	}

	if strings.TrimSpace(req.DueDate) != "" {
		if due, err := models.ParseDueDate(req.DueDate); err != nil {
			verr.Add("dueDate", err.Error())
		} else {
			input.DueDate = &due
		}
	}

	if verr.HasErrors() {
		return service.TaskInput{}, verr
	}
	return input, nil
}

func parseListFilter(r *http.Request) (service.ListFilter, *service.ValidationError) {
	verr := &service.ValidationError{}
	filter := service.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status, err := models.ParseStatus(s)
		if err != nil {
			verr.Add("status", err.Error())
		} else {
			filter.Status = status
		}
	}
	if p := q.Get("priority"); p != "" {
		priority, err := models.ParsePriority(p)
		if err != nil {
			verr.Add("priority", err.Error())
		} else {
			filter.Priority = priority
		}
	}
	if d := q.Get("dueBefore"); d != "" {
		due, err := models.ParseDueDate(d)
		if err != nil {
			verr.Add("dueBefore", err.Error())
		} else {
			filter.DueBefore = &due
		}
	}

	if verr.HasErrors() {
		return service.ListFilter{}, verr
	}
	return filter, nil
}

/*
handles routes:
- GET /tasks?status=&priority=&dueBefore= - list tasks with optional filters
- POST /tasks - create a new task
*/
func (h *Handler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTasks(w, r)
	case http.MethodPost:
		h.createTask(w, r)
	default:
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	filter, verr := parseListFilter(r)
	if verr != nil {
		sendServiceError(w, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	tasks, err := h.Service.List(ctx, filter)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	resp := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		resp[i] = toTaskResponse(task)
	}
	sendJSON(w, http.StatusOK, resp)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		sendError(w, "Content-Type must be application/json", http.StatusBadRequest)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	input, verr := parseTaskInput(req)
	if verr != nil {
		sendServiceError(w, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	task, err := h.Service.Create(ctx, input)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	h.WSHub.BroadcastTaskEvent(EventTaskCreated, task)
	w.Header().Set("Location", "/tasks/"+task.ID.String())
	sendJSON(w, http.StatusCreated, toTaskResponse(task))
}

/*
routes:
- GET /tasks/{id},
- PUT /tasks/{id},
- DELETE /tasks/{id}
*/
func (h *Handler) HandleTaskByID(w http.ResponseWriter, r *http.Request) {
	taskIDstr := strings.TrimPrefix(r.URL.Path, "/tasks/")
	if taskIDstr == "" {
		sendError(w, "task id is required", http.StatusBadRequest)
		return
	}
	taskID, err := uuid.Parse(taskIDstr)
	if err != nil {
		sendError(w, "task id must be a valid uuid", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getTaskByID(w, r, taskID)
	case http.MethodPut:
		h.updateTaskByID(w, r, taskID)
	case http.MethodDelete:
		h.deleteTaskByID(w, r, taskID)
	default:
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) getTaskByID(w http.ResponseWriter, r *http.Request, taskID uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	task, err := h.Service.Get(ctx, taskID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *Handler) updateTaskByID(w http.ResponseWriter, r *http.Request, taskID uuid.UUID) {
	if !isJSONContentType(r) {
		sendError(w, "Content-Type must be application/json", http.StatusBadRequest)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	input, verr := parseTaskInput(req)
	if verr != nil {
		sendServiceError(w, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	task, err := h.Service.Update(ctx, taskID, input)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	h.WSHub.BroadcastTaskEvent(EventTaskUpdated, task)
	sendJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *Handler) deleteTaskByID(w http.ResponseWriter, r *http.Request, taskID uuid.UUID) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	task, err := h.Service.Delete(ctx, taskID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	h.WSHub.BroadcastTaskEvent(EventTaskDeleted, task)
	w.WriteHeader(http.StatusNoContent)
}
