package http

import (
	"encoding/json"
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// BranchHandler serves branch administration
type BranchHandler struct {
	svc service.BranchService
}

func NewBranchHandler(svc service.BranchService) *BranchHandler {
	return &BranchHandler{svc: svc}
}

// HandleCreate handles POST /api/branches
func (h *BranchHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var branch domain.Branch
	if err := json.NewDecoder(r.Body).Decode(&branch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if branch.Name == "" {
		writeBadRequest(w, "branch_name is required")
		return
	}

	if err := h.svc.AddBranch(r.Context(), &branch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, branch)
}

// HandleList handles GET /api/branches
func (h *BranchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	branches, err := h.svc.ListBranches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if branches == nil {
		branches = []domain.Branch{}
	}
	writeJSON(w, http.StatusOK, branches)
}

// HandleDelete handles DELETE /api/branches/{id}
func (h *BranchHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveBranch(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// HandleRename handles PATCH /api/branches/{id}
func (h *BranchHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		Name string `json:"branch_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeBadRequest(w, "branch_name is required")
		return
	}

	if err := h.svc.RenameBranch(r.Context(), id, body.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
