package handler

import (
	"log/slog"
	"net/http"

	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/httputil"
)

// createStakeholderRequest is the POST /api/stakeholders body
type createStakeholderRequest struct {
	ProjectID    int64   `json:"project_id"`
	ProcessID    *int64  `json:"process_id"`
	SubprocessID *int64  `json:"subprocess_id"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	Area         string  `json:"area"`
	Contact      string  `json:"contact"`
	Notes        *string `json:"notes"`
	Color        string  `json:"color"`
}

// updateStakeholderRequest is the PATCH /api/stakeholders/{id} body.
// project_id is decoded only so that an attempt to change it can be rejected.
type updateStakeholderRequest struct {
	ProjectID    httputil.Optional[int64]  `json:"project_id"`
	ProcessID    httputil.Optional[int64]  `json:"process_id"`
	SubprocessID httputil.Optional[int64]  `json:"subprocess_id"`
	FullName     httputil.Optional[string] `json:"full_name"`
	Role         httputil.Optional[string] `json:"role"`
	Area         httputil.Optional[string] `json:"area"`
	Contact      httputil.Optional[string] `json:"contact"`
	Notes        httputil.Optional[string] `json:"notes"`
	Color        httputil.Optional[string] `json:"color"`
}

// StakeholderHandler handles stakeholder HTTP requests
type StakeholderHandler struct {
	stakeholderService analysisSvc.StakeholderService
	logger             *slog.Logger
}

// NewStakeholderHandler creates a new stakeholder handler
func NewStakeholderHandler(stakeholderService analysisSvc.StakeholderService, logger *slog.Logger) *StakeholderHandler {
	return &StakeholderHandler{
		stakeholderService: stakeholderService,
		logger:             logger,
	}
}

// ListStakeholders retrieves every stakeholder, or those of one project when projectId is given
// GET /api/stakeholders?projectId=
func (h *StakeholderHandler) ListStakeholders(w http.ResponseWriter, r *http.Request) {
	projectID, filtered, err := httputil.QueryInt64(r, "projectId")
	if err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var result interface{}
	if filtered {
		result, err = h.stakeholderService.ListStakeholdersByProject(r.Context(), projectID)
	} else {
		result, err = h.stakeholderService.ListStakeholders(r.Context())
	}
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// CreateStakeholder creates a stakeholder
// POST /api/stakeholders
func (h *StakeholderHandler) CreateStakeholder(w http.ResponseWriter, r *http.Request) {
	var body createStakeholderRequest
	if !parseBody(w, r, &body) {
		return
	}

	stakeholder, err := h.stakeholderService.CreateStakeholder(r.Context(), &analysisSvc.CreateStakeholderRequest{
		ProjectID:    body.ProjectID,
		ProcessID:    body.ProcessID,
		SubprocessID: body.SubprocessID,
		FullName:     body.FullName,
		Role:         body.Role,
		Area:         body.Area,
		Contact:      body.Contact,
		Notes:        body.Notes,
		Color:        body.Color,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, stakeholder)
}

// GetStakeholder retrieves a stakeholder by ID
// GET /api/stakeholders/{id}
func (h *StakeholderHandler) GetStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stakeholder, err := h.stakeholderService.GetStakeholder(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stakeholder)
}

// UpdateStakeholder applies a partial update
// PATCH /api/stakeholders/{id}
func (h *StakeholderHandler) UpdateStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body updateStakeholderRequest
	if !parseBody(w, r, &body) {
		return
	}
	if body.ProjectID.Present {
		httputil.RespondError(w, r, http.StatusBadRequest, "project_id cannot be changed")
		return
	}

	stakeholder, err := h.stakeholderService.UpdateStakeholder(r.Context(), id, &analysisSvc.UpdateStakeholderRequest{
		ProcessID:    toPatch(body.ProcessID),
		SubprocessID: toPatch(body.SubprocessID),
		FullName:     toPatch(body.FullName),
		Role:         toPatch(body.Role),
		Area:         toPatch(body.Area),
		Contact:      toPatch(body.Contact),
		Notes:        toPatch(body.Notes),
		Color:        toPatch(body.Color),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stakeholder)
}

// DeleteStakeholder deletes a stakeholder
// DELETE /api/stakeholders/{id}
func (h *StakeholderHandler) DeleteStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.stakeholderService.DeleteStakeholder(r.Context(), id); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
