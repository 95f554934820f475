package mux

import (
	"errors"
	"fmt"
	"net/http"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
	"strings"
)

var errDuplicateCards = errors.New("hand contains duplicate cards")

type handResponse struct {
	Hand     string         `json:"hand"`
	Category poker.Category `json:"category"`
	Rank     int            `json:"rank"`
	TieBreak []int          `json:"tieBreak"`
	Total    int            `json:"total"`
}

func newHandResponse(h *poker.Hand) handResponse {
	return handResponse{
		Hand:     h.String(),
		Category: h.Category(),
		Rank:     int(h.Category()),
		TieBreak: h.TieBreak(),
		Total:    h.Total(),
	}
}

// parseHand evaluates the hand and writes an error response on failure
func (m *Mux) parseHand(w http.ResponseWriter, s string) (*poker.Hand, bool) {
	cards, err := deck.HandFromString(s)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return nil, false
	}

	if m.config.rejectDuplicateCards {
		if dupes := cards.Duplicates(); len(dupes) > 0 {
			writeJSONError(w, http.StatusUnprocessableEntity, fmt.Errorf("%w: %s", errDuplicateCards, deck.Hand(dupes)))
			return nil, false
		}
	}

	h, err := poker.NewHand(cards)
	if err != nil {
		// only reachable with duplicate cards, i.e., five of a kind
		writeJSONError(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}

	return h, true
}

type postHandPayload struct {
	Hand string `json:"hand"`
}

func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postHandPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		h, ok := m.parseHand(w, payload.Hand)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(h))
	}
}

type postComparePayload struct {
	Hand  string `json:"hand"`
	Other string `json:"other"`
}

type compareResponse struct {
	Result poker.Result `json:"result"`
	Hand   handResponse `json:"hand"`
	Other  handResponse `json:"other"`
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postComparePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		h, ok := m.parseHand(w, payload.Hand)
		if !ok {
			return
		}

		other, ok := m.parseHand(w, payload.Other)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Result: h.Compare(other),
			Hand:   newHandResponse(h),
			Other:  newHandResponse(other),
		})
	}
}

type postRankPayload struct {
	Hands []string `json:"hands"`
}

type rankedHand struct {
	handResponse
	// Position is shared by hands that draw
	Position int `json:"position"`
}

type rankResponse struct {
	Hands []rankedHand `json:"hands"`
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRankPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("hands cannot be empty"))
			return
		}

		if len(payload.Hands) > m.config.maxHandsPerRequest {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hands cannot contain more than %d entries", m.config.maxHandsPerRequest))
			return
		}

		hands := make([]*poker.Hand, len(payload.Hands))
		for i, s := range payload.Hands {
			h, ok := m.parseHand(w, strings.TrimSpace(s))
			if !ok {
				return
			}

			hands[i] = h
		}

		sorted := poker.SortHands(hands)
		resp := rankResponse{Hands: make([]rankedHand, len(sorted))}
		for i, h := range sorted {
			position := i + 1
			if i > 0 && h.Compare(sorted[i-1]) == poker.Draw {
				position = resp.Hands[i-1].Position
			}

			resp.Hands[i] = rankedHand{
				handResponse: newHandResponse(h),
				Position:     position,
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
