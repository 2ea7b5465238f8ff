package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ideaforge/forge/internal/domain"
)

// ─── Work history ───────────────────────────────────────────────────────────

// completeWorkRequest is the wire form of a mark-as-done mutation.
// CompletedAtMillis of zero means "now".
type completeWorkRequest struct {
	WorkID            int      `json:"workId"`
	Tier              string   `json:"tier"`
	CompletedAtMillis int64    `json:"completedAtMillis,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	Frameworks        []string `json:"frameworks,omitempty"`
	Datastores        []string `json:"datastores,omitempty"`
}

func (s *Server) handleCompleteWork(w http.ResponseWriter, r *http.Request) {
	var req completeWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	work := domain.CompletedWork{
		WorkID:     req.WorkID,
		Tier:       tier,
		Languages:  req.Languages,
		Frameworks: req.Frameworks,
		Datastores: req.Datastores,
	}
	if req.CompletedAtMillis > 0 {
		work.CompletedAt = time.UnixMilli(req.CompletedAtMillis).UTC()
	}

	result, err := s.progression.Complete(work)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMasterDisabled),
			errors.Is(err, domain.ErrInvalidWork),
			errors.Is(err, domain.ErrUnknownTier):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUndoWork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := s.progression.Undo(id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListWork(w http.ResponseWriter, r *http.Request) {
	history, err := s.progression.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if history == nil {
		history = []domain.CompletedWork{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"work": history,
	})
}

// ─── Progress ───────────────────────────────────────────────────────────────

func (s *Server) handleAchievementProgress(w http.ResponseWriter, r *http.Request) {
	s.writeProgress(w, domain.ScopeAchievement)
}

func (s *Server) handleBadgeProgress(w http.ResponseWriter, r *http.Request) {
	s.writeProgress(w, domain.ScopeBadge)
}

// writeProgress serializes per-criterion snapshots plus the persisted
// unlock state so the UI can draw both the bar and the lock icon.
func (s *Server) writeProgress(w http.ResponseWriter, scope domain.Scope) {
	snaps, err := s.progression.Snapshots(scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	unlocked, err := s.progression.Unlocked(scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, u := range unlocked {
		unlockedAt[u.ID] = u.UnlockedAt
	}

	type entry struct {
		CriterionID     string `json:"criterionId"`
		Name            string `json:"name"`
		Satisfied       bool   `json:"satisfied"`
		ProgressPercent int    `json:"progressPercent"`
		Unlocked        bool   `json:"unlocked"`
		UnlockedAt      int64  `json:"unlockedAtMillis,omitempty"`
	}

	out := make([]entry, len(snaps))
	for i, snap := range snaps {
		e := entry{
			CriterionID:     snap.CriterionID,
			Name:            s.progression.CriterionName(snap.CriterionID),
			Satisfied:       snap.Satisfied,
			ProgressPercent: snap.ProgressPercent,
		}
		if at, ok := unlockedAt[snap.CriterionID]; ok {
			e.Unlocked = true
			e.UnlockedAt = at.UnixMilli()
		}
		out[i] = e
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scope":    scope,
		"progress": out,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.progression.Summary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ─── Notifications ──────────────────────────────────────────────────────────

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}

	pending, err := s.progression.PendingNotifications(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pending == nil {
		pending = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": pending,
	})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.progression.MarkNotificationShown(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
