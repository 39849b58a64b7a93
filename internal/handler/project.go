package handler

import (
	"log/slog"
	"net/http"

	models "analysisdesk/internal/domain/models/analysis"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/httputil"
)

// createProjectRequest is the POST /api/projects body
type createProjectRequest struct {
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	StartDate   *string               `json:"start_date"`
	Status      *models.ProjectStatus `json:"status"`
	Color       *string               `json:"color"`
}

// updateProjectRequest is the PATCH /api/projects/{id} body; absent keys are left unchanged
type updateProjectRequest struct {
	Name        httputil.Optional[string]               `json:"name"`
	Description httputil.Optional[string]               `json:"description"`
	StartDate   httputil.Optional[string]               `json:"start_date"`
	Status      httputil.Optional[models.ProjectStatus] `json:"status"`
	Color       httputil.Optional[string]               `json:"color"`
}

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService analysisSvc.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService analysisSvc.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects retrieves all projects, most recently created first
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// CreateProject creates a new project
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body createProjectRequest
	if !parseBody(w, r, &body) {
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), &analysisSvc.CreateProjectRequest{
		Name:        body.Name,
		Description: body.Description,
		StartDate:   body.StartDate,
		Status:      body.Status,
		Color:       body.Color,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// GetStats counts projects per status
// GET /api/projects/stats
func (h *ProjectHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.projectService.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}

// GetProject retrieves a project by ID
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// GetOverview retrieves a project with counts of its dependent records
// GET /api/projects/{id}/overview
func (h *ProjectHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	overview, err := h.projectService.GetOverview(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, overview)
}

// UpdateProject applies a partial update
// PATCH /api/projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body updateProjectRequest
	if !parseBody(w, r, &body) {
		return
	}

	project, err := h.projectService.UpdateProject(r.Context(), id, &analysisSvc.UpdateProjectRequest{
		Name:        toPatch(body.Name),
		Description: toPatch(body.Description),
		StartDate:   toPatch(body.StartDate),
		Status:      toPatch(body.Status),
		Color:       toPatch(body.Color),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project
// DELETE /api/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
