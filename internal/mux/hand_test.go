package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_postHand(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp handResponse
	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KH KD 7C 5S"}, &resp, http.StatusOK)
	assert.Equal(t, "KC KH KD 7C 5S", resp.Hand)
	assert.Equal(t, "Three of a kind", resp.Category.String())
	assert.Equal(t, 4, resp.Rank)
	assert.Equal(t, []int{13, 7, 5}, resp.TieBreak)
	assert.Equal(t, 13*3+7+5, resp.Total)

	var errObj errorResponse
	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KH KD 7C"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, `malformed hand "KC KH KD 7C": expected 5 cards, got 4`, errObj.Message)

	assertPost(t, ts, "/hand", `{"hand":`, &errObj, http.StatusBadRequest)

	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KC KC KC KC"}, &errObj, http.StatusUnprocessableEntity)
	assert.Equal(t, `KC KC KC KC KC: hand could not be classified: count profile "5"`, errObj.Message)

	// duplicates are accepted unless configured otherwise
	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KC 2D 3H 4S"}, &resp, http.StatusOK)
	assert.Equal(t, "Pair", resp.Category.String())
}

func TestMux_postHand_rejectDuplicateCards(t *testing.T) {
	m := NewMux("")
	m.config.rejectDuplicateCards = true

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KC 2D 3H 3H"}, &errObj, http.StatusUnprocessableEntity)
	assert.Equal(t, "hand contains duplicate cards: KC 3H", errObj.Message)

	var resp handResponse
	assertPost(t, ts, "/hand", postHandPayload{Hand: "KC KD 2D 3H 3S"}, &resp, http.StatusOK)
	assert.Equal(t, "Two pair", resp.Category.String())
}

func TestMux_postCompare(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp struct {
		Result string       `json:"result"`
		Hand   handResponse `json:"hand"`
		Other  handResponse `json:"other"`
	}
	assertPost(t, ts, "/compare", postComparePayload{Hand: "AC 4H 7D KC 2S", Other: "AD 4D 8D KS 2H"}, &resp, http.StatusOK)
	assert.Equal(t, "Loss", resp.Result)
	assert.Equal(t, []int{14, 13, 7, 4, 2}, resp.Hand.TieBreak)
	assert.Equal(t, []int{14, 13, 8, 4, 2}, resp.Other.TieBreak)

	assertPost(t, ts, "/compare", postComparePayload{Hand: "AD 4D 8D KS 2H", Other: "AC 4H 7D KC 2S"}, &resp, http.StatusOK)
	assert.Equal(t, "Win", resp.Result)

	assertPost(t, ts, "/compare", postComparePayload{Hand: "TH JH QH KH AH", Other: "TD JD QD KD AD"}, &resp, http.StatusOK)
	assert.Equal(t, "Draw", resp.Result)
	assert.Equal(t, "Royal flush", resp.Hand.Category.String())

	var errObj errorResponse
	assertPost(t, ts, "/compare", postComparePayload{Hand: "TH JH QH KH AH", Other: "TD JD QD KD ZD"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, `malformed hand "TD JD QD KD ZD": card 5: token "ZD" has unknown value 'Z'`, errObj.Message)
}

func TestMux_postRank(t *testing.T) {
	m := NewMux("")
	m.config.maxHandsPerRequest = 4

	ts := httptest.NewServer(m)
	defer ts.Close()

	var resp struct {
		Hands []struct {
			Hand     string `json:"hand"`
			Category string `json:"category"`
			Position int    `json:"position"`
		} `json:"hands"`
	}
	assertPost(t, ts, "/rank", postRankPayload{Hands: []string{
		"AC 4H 7D KC 2S",
		"KC KH KD 7C 7S",
		"AD 4S 7H KH 2C",
		"2C 3H 4D 5C AS",
	}}, &resp, http.StatusOK)

	if assert.Len(t, resp.Hands, 4) {
		assert.Equal(t, "KC KH KD 7C 7S", resp.Hands[0].Hand)
		assert.Equal(t, "Full house", resp.Hands[0].Category)
		assert.Equal(t, 1, resp.Hands[0].Position)
		assert.Equal(t, "2C 3H 4D 5C AS", resp.Hands[1].Hand)
		assert.Equal(t, 2, resp.Hands[1].Position)
		assert.Equal(t, "AC 4H 7D KC 2S", resp.Hands[2].Hand)
		assert.Equal(t, 3, resp.Hands[2].Position)
		assert.Equal(t, "AD 4S 7H KH 2C", resp.Hands[3].Hand)
		assert.Equal(t, 3, resp.Hands[3].Position)
	}

	var errObj errorResponse
	assertPost(t, ts, "/rank", postRankPayload{}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "hands cannot be empty", errObj.Message)

	assertPost(t, ts, "/rank", postRankPayload{Hands: []string{"2C 3H 4D 5C AS", "2C 3H 4D 5C AS", "2C 3H 4D 5C AS", "2C 3H 4D 5C AS", "2C 3H 4D 5C AS"}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "hands cannot contain more than 4 entries", errObj.Message)

	assertPost(t, ts, "/rank", postRankPayload{Hands: []string{"2C 3H 4D 5C AS", "2C 3H"}}, &errObj, http.StatusBadRequest)
}

func TestMux_requestID(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp := assertDo(t, req, nil, http.StatusOK)
	if assert.NotNil(t, resp) {
		assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))
	}
}
