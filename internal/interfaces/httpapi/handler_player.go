package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

const defaultPlayerSearchLimit = 20

type createPlayerRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=100"`
	LastName  string   `json:"last_name" validate:"required,max=100"`
	Email     *string  `json:"email" validate:"omitempty,max=254"`
	Phone     *string  `json:"phone" validate:"omitempty,max=40"`
	Handicap  *float64 `json:"handicap"`
}

type updateContactRequest struct {
	Email *string `json:"email" validate:"omitempty,max=254"`
	Phone *string `json:"phone" validate:"omitempty,max=40"`
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SearchPlayers")
	defer span.End()

	limit, err := queryInt(r, "limit", defaultPlayerSearchLimit, 1, 100)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.Search(ctx, r.URL.Query().Get("q"), limit)
	if err != nil {
		h.fail(ctx, w, "search players failed", err)
		return
	}

	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", playerID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Handicap:  req.Handicap,
	})
	if err != nil {
		h.fail(ctx, w, "create player failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayerContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayerContact")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateContactRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdateContact(ctx, playerID, usecase.UpdateContactInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.fail(ctx, w, "update player contact failed", err, "player_id", playerID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}
