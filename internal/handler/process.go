package handler

import (
	"log/slog"
	"net/http"

	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/httputil"
)

// createProcessRequest is the POST /api/processes body
type createProcessRequest struct {
	ProjectID   int64   `json:"project_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Weight      *int    `json:"weight"`
}

// updateProcessRequest is the PATCH /api/processes/{id} body
type updateProcessRequest struct {
	Name        httputil.Optional[string] `json:"name"`
	Description httputil.Optional[string] `json:"description"`
	Color       httputil.Optional[string] `json:"color"`
	Weight      httputil.Optional[int]    `json:"weight"`
}

// createSubprocessRequest is the POST /api/processes/{id}/subprocesses body
type createSubprocessRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// updateSubprocessRequest is the PATCH /api/subprocesses/{id} body
type updateSubprocessRequest struct {
	Name        httputil.Optional[string] `json:"name"`
	Description httputil.Optional[string] `json:"description"`
}

// ProcessHandler handles process and subprocess HTTP requests
type ProcessHandler struct {
	processService analysisSvc.ProcessService
	logger         *slog.Logger
}

// NewProcessHandler creates a new process handler
func NewProcessHandler(processService analysisSvc.ProcessService, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{
		processService: processService,
		logger:         logger,
	}
}

// ListProcesses retrieves the processes of a project
// GET /api/processes?projectId=
func (h *ProcessHandler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	projectID, ok, err := httputil.QueryInt64(r, "projectId")
	if err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		httputil.RespondError(w, r, http.StatusBadRequest, "projectId is required")
		return
	}

	processes, err := h.processService.ListProcesses(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, processes)
}

// CreateProcess creates a process
// POST /api/processes
func (h *ProcessHandler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var body createProcessRequest
	if !parseBody(w, r, &body) {
		return
	}

	process, err := h.processService.CreateProcess(r.Context(), &analysisSvc.CreateProcessRequest{
		ProjectID:   body.ProjectID,
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
		Weight:      body.Weight,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, process)
}

// GetProcess retrieves a process by ID
// GET /api/processes/{id}
func (h *ProcessHandler) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	process, err := h.processService.GetProcess(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, process)
}

// UpdateProcess applies a partial update
// PATCH /api/processes/{id}
func (h *ProcessHandler) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body updateProcessRequest
	if !parseBody(w, r, &body) {
		return
	}

	process, err := h.processService.UpdateProcess(r.Context(), id, &analysisSvc.UpdateProcessRequest{
		Name:        toPatch(body.Name),
		Description: toPatch(body.Description),
		Color:       toPatch(body.Color),
		Weight:      toPatch(body.Weight),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, process)
}

// DeleteProcess deletes a process and detaches its stakeholders
// DELETE /api/processes/{id}
func (h *ProcessHandler) DeleteProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.processService.DeleteProcess(r.Context(), id); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSubprocesses retrieves the subprocesses of a process
// GET /api/processes/{id}/subprocesses
func (h *ProcessHandler) ListSubprocesses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	subprocesses, err := h.processService.ListSubprocesses(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, subprocesses)
}

// CreateSubprocess creates a subprocess under the process in the path
// POST /api/processes/{id}/subprocesses
func (h *ProcessHandler) CreateSubprocess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body createSubprocessRequest
	if !parseBody(w, r, &body) {
		return
	}

	subprocess, err := h.processService.CreateSubprocess(r.Context(), &analysisSvc.CreateSubprocessRequest{
		ProcessID:   id,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, subprocess)
}

// GetSubprocess retrieves a subprocess by ID
// GET /api/subprocesses/{id}
func (h *ProcessHandler) GetSubprocess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	subprocess, err := h.processService.GetSubprocess(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, subprocess)
}

// UpdateSubprocess applies a partial update
// PATCH /api/subprocesses/{id}
func (h *ProcessHandler) UpdateSubprocess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body updateSubprocessRequest
	if !parseBody(w, r, &body) {
		return
	}

	subprocess, err := h.processService.UpdateSubprocess(r.Context(), id, &analysisSvc.UpdateSubprocessRequest{
		Name:        toPatch(body.Name),
		Description: toPatch(body.Description),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, subprocess)
}

// DeleteSubprocess deletes a subprocess and detaches its stakeholders
// DELETE /api/subprocesses/{id}
func (h *ProcessHandler) DeleteSubprocess(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.processService.DeleteSubprocess(r.Context(), id); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
