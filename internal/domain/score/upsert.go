package score

// UpsertRequest is a single hole write as received from a caller.
type UpsertRequest struct {
	EventID    int64
	TeamID     *int64
	PlayerID   *int64
	HoleNumber int
	Strokes    int
	Par        *int
}

// Key is the natural key a score row is upserted on.
type Key struct {
	EventID    int64
	Owner      Owner
	HoleNumber int
}

// ConflictTarget names the unique columns backing the key.
func (k Key) ConflictTarget() []string {
	if k.Owner.Kind == OwnerPlayer {
		return []string{"event_id", "player_id", "hole_number"}
	}
	return []string{"event_id", "team_id", "hole_number"}
}

// Resolution is the outcome of Resolve: the key to match on and the row to
// write, with the reference not covered by the key set to nil.
type Resolution struct {
	Key     Key
	Payload Score
}

// Resolve picks the player key when the request names a player and no team,
// otherwise the team key.
func Resolve(req UpsertRequest) Resolution {
	payload := Score{
		EventID:    req.EventID,
		HoleNumber: req.HoleNumber,
		Strokes:    req.Strokes,
		Par:        cloneInt(req.Par),
	}

	var owner Owner
	if req.PlayerID != nil && req.TeamID == nil {
		owner = PlayerOwner(*req.PlayerID)
		payload.PlayerID = cloneInt64(req.PlayerID)
	} else {
		if req.TeamID != nil {
			owner = TeamOwner(*req.TeamID)
		} else {
			owner = Owner{Kind: OwnerTeam}
		}
		payload.TeamID = cloneInt64(req.TeamID)
	}

	return Resolution{
		Key: Key{
			EventID:    req.EventID,
			Owner:      owner,
			HoleNumber: req.HoleNumber,
		},
		Payload: payload,
	}
}

// DeleteKey builds the key for a delete request using the same rule.
func DeleteKey(eventID int64, teamID, playerID *int64, hole int) Key {
	return Resolve(UpsertRequest{
		EventID:    eventID,
		TeamID:     teamID,
		PlayerID:   playerID,
		HoleNumber: hole,
	}).Key
}

// KeyOf returns the key an existing row is stored under.
func KeyOf(s Score) Key {
	return Key{EventID: s.EventID, Owner: s.Owner(), HoleNumber: s.HoleNumber}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
