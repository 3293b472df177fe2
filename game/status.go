package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStatusTooShort is returned for status text with fewer than two tokens.
var ErrStatusTooShort = errors.New("status needs at least two tokens")

// PlayerStatus describes how a player left the game. The fields are the
// verbatim tokens of the status column.
type PlayerStatus struct {
	ExitDayNumber string `json:"exit_day_number"`
	ExitReason    string `json:"exit_reason"`
	ExitFrame     string `json:"exit_frame"`
}

// ParseStatus splits a status such as "отравление 3 ночь" into reason, day
// number and frame. The last token is the frame, the one before it the day
// number, and everything earlier is the reason.
func ParseStatus(text string) (PlayerStatus, error) {
	tokens := strings.Fields(text)
	n := len(tokens)
	if n < 2 {
		return PlayerStatus{}, fmt.Errorf("%w: %q", ErrStatusTooShort, text)
	}

	return PlayerStatus{
		ExitDayNumber: tokens[n-2],
		ExitReason:    strings.Join(tokens[:n-2], " "),
		ExitFrame:     tokens[n-1],
	}, nil
}
