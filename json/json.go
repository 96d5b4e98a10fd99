// Package json provides the persisted JSON form of the session history and
// a probearm.HistoryStore that keeps it in a single probearm.Storage slot.
package json

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/probearm"
)

// sessionDTO is the wire format of one finalized session. Field names match
// the history written by earlier versions of the tool.
type sessionDTO struct {
	Start     *time.Time    `json:"start"`
	End       *time.Time    `json:"end,omitempty"`
	Keys      []string      `json:"keys"`
	ProbeMove *probeMoveDTO `json:"probeMove,omitempty"`
}

type probeMoveDTO struct {
	From *coordinateDTO `json:"from"`
	To   *coordinateDTO `json:"to"`
}

type coordinateDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MarshalHistory serializes sessions as a JSON array.
func MarshalHistory(sessions []probearm.Session) ([]byte, error) {
	dtos := make([]sessionDTO, len(sessions))
	for i, s := range sessions {
		dtos[i] = marshalSession(s)
	}
	return json.Marshal(dtos)
}

// UnmarshalHistory deserializes a JSON array of sessions. A JSON null
// decodes to an empty list.
func UnmarshalHistory(data []byte) ([]probearm.Session, error) {
	var dtos []sessionDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	sessions := make([]probearm.Session, len(dtos))
	for i, dto := range dtos {
		s, err := unmarshalSession(dto)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions[i] = s
	}
	return sessions, nil
}

func marshalSession(s probearm.Session) sessionDTO {
	dto := sessionDTO{
		Keys: make([]string, len(s.Keys)),
		ProbeMove: &probeMoveDTO{
			From: &coordinateDTO{X: s.ProbeMove.From.X, Y: s.ProbeMove.From.Y},
		},
	}
	if !s.Start.IsZero() {
		start := s.Start
		dto.Start = &start
	}
	if !s.End.IsZero() {
		end := s.End
		dto.End = &end
	}
	for i, k := range s.Keys {
		dto.Keys[i] = k.String()
	}
	if to := s.ProbeMove.To; to != nil {
		dto.ProbeMove.To = &coordinateDTO{X: to.X, Y: to.Y}
	}
	return dto
}

func unmarshalSession(dto sessionDTO) (probearm.Session, error) {
	var s probearm.Session
	if dto.Start != nil {
		s.Start = *dto.Start
	}
	if dto.End != nil {
		s.End = *dto.End
	}
	s.Keys = make([]probearm.Command, len(dto.Keys))
	for i, k := range dto.Keys {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) {
			return probearm.Session{}, fmt.Errorf("key %d: want a single character, got %q", i, k)
		}
		s.Keys[i] = probearm.Command(r)
	}
	if pm := dto.ProbeMove; pm != nil {
		if pm.From != nil {
			s.ProbeMove.From = probearm.Coordinate{X: pm.From.X, Y: pm.From.Y}
		}
		if pm.To != nil {
			s.ProbeMove.To = &probearm.Coordinate{X: pm.To.X, Y: pm.To.Y}
		}
	}
	return s, nil
}
