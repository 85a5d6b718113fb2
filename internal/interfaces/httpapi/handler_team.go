package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

type saveTeamRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	PlayerIDs    []int64 `json:"player_ids" validate:"required,min=1,max=4,dive,gt=0"`
	StartingHole *int    `json:"starting_hole" validate:"omitempty,min=1,max=18"`
}

type rosterCheckRequest struct {
	// TeamID is the team being edited; zero for a new team.
	TeamID    int64   `json:"team_id" validate:"gte=0"`
	PlayerIDs []int64 `json:"player_ids" validate:"required,min=1,dive,gt=0"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListByEvent(ctx, eventID)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) CheckRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CheckRoster")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req rosterCheckRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	conflicts, err := h.teamService.CheckRoster(ctx, eventID, req.TeamID, req.PlayerIDs)
	if err != nil {
		h.fail(ctx, w, "check roster failed", err, "event_id", eventID)
		return
	}
	if conflicts == nil {
		conflicts = []int64{}
	}
	writeSuccess(ctx, w, http.StatusOK, rosterCheckDTO{ConflictingPlayerIDs: conflicts})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateTeam")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req saveTeamRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.SaveTeamInput{
		EventID:      eventID,
		Name:         req.Name,
		PlayerIDs:    req.PlayerIDs,
		StartingHole: req.StartingHole,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateTeam")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req saveTeamRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, teamID, usecase.SaveTeamInput{
		EventID:      eventID,
		Name:         req.Name,
		PlayerIDs:    req.PlayerIDs,
		StartingHole: req.StartingHole,
	})
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "event_id", eventID, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteTeam")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.Delete(ctx, eventID, teamID); err != nil {
		h.fail(ctx, w, "delete team failed", err, "event_id", eventID, "team_id", teamID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
