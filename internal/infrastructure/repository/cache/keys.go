package cache

import (
	"strconv"

	"github.com/riskibarqy/golf-scoring/internal/domain/score"
)

const (
	eventListKey       = "event:list"
	eventCodeKeyPrefix = "event:code:"
)

func eventIDKey(eventID int64) string {
	return "event:id:" + strconv.FormatInt(eventID, 10)
}

func teamListKey(eventID int64) string {
	return "team:list:" + strconv.FormatInt(eventID, 10)
}

func teamIDKeyPrefix(eventID int64) string {
	return "team:id:" + strconv.FormatInt(eventID, 10) + ":"
}

func teamIDKey(eventID, teamID int64) string {
	return teamIDKeyPrefix(eventID) + strconv.FormatInt(teamID, 10)
}

func playerIDKey(playerID int64) string {
	return "player:id:" + strconv.FormatInt(playerID, 10)
}

func scoreListKeyPrefix(eventID int64) string {
	return "score:list:" + strconv.FormatInt(eventID, 10) + ":"
}

func scoreListKey(eventID int64, filter score.Filter) string {
	key := scoreListKeyPrefix(eventID) + "team="
	if filter.TeamID != nil {
		key += strconv.FormatInt(*filter.TeamID, 10)
	}
	key += ":player="
	if filter.PlayerID != nil {
		key += strconv.FormatInt(*filter.PlayerID, 10)
	}
	return key
}
