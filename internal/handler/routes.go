package handler

import "net/http"

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Health      *HealthHandler
	Project     *ProjectHandler
	Stakeholder *StakeholderHandler
	Process     *ProcessHandler
}

// RegisterRoutes registers the API on mux using Go 1.22 method and wildcard patterns.
// Literal segments such as /api/projects/stats take precedence over {id}.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	// Health check
	mux.HandleFunc("GET /health", h.Health.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", h.Project.ListProjects)
	mux.HandleFunc("POST /api/projects", h.Project.CreateProject)
	mux.HandleFunc("GET /api/projects/stats", h.Project.GetStats)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.GetProject)
	mux.HandleFunc("GET /api/projects/{id}/overview", h.Project.GetOverview)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Project.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Project.DeleteProject)

	// Stakeholder routes
	mux.HandleFunc("GET /api/stakeholders", h.Stakeholder.ListStakeholders)
	mux.HandleFunc("POST /api/stakeholders", h.Stakeholder.CreateStakeholder)
	mux.HandleFunc("GET /api/stakeholders/{id}", h.Stakeholder.GetStakeholder)
	mux.HandleFunc("PATCH /api/stakeholders/{id}", h.Stakeholder.UpdateStakeholder)
	mux.HandleFunc("DELETE /api/stakeholders/{id}", h.Stakeholder.DeleteStakeholder)

	// Process routes
	mux.HandleFunc("GET /api/processes", h.Process.ListProcesses)
	mux.HandleFunc("POST /api/processes", h.Process.CreateProcess)
	mux.HandleFunc("GET /api/processes/{id}", h.Process.GetProcess)
	mux.HandleFunc("PATCH /api/processes/{id}", h.Process.UpdateProcess)
	mux.HandleFunc("DELETE /api/processes/{id}", h.Process.DeleteProcess)
	mux.HandleFunc("GET /api/processes/{id}/subprocesses", h.Process.ListSubprocesses)
	mux.HandleFunc("POST /api/processes/{id}/subprocesses", h.Process.CreateSubprocess)

	// Subprocess routes
	mux.HandleFunc("GET /api/subprocesses/{id}", h.Process.GetSubprocess)
	mux.HandleFunc("PATCH /api/subprocesses/{id}", h.Process.UpdateSubprocess)
	mux.HandleFunc("DELETE /api/subprocesses/{id}", h.Process.DeleteSubprocess)
}
