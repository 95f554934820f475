package main

import (
	"bytes"
	"errors"
	"pokerhands/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_run(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, run(&buf, []string{"KC KH KD 7C 5S"}, false))
	assert.Equal(t, "KC KH KD 7C 5S: Three of a kind [13 7 5]\n", buf.String())

	buf.Reset()
	assert.NoError(t, run(&buf, []string{"AC 4H 7D KC 2S", "AD 4D 8D KS 2H"}, false))
	assert.Equal(t, "AC 4H 7D KC 2S: High card [14 13 7 4 2]\nAD 4D 8D KS 2H: High card [14 13 8 4 2]\nLoss\n", buf.String())

	buf.Reset()
	err := run(&buf, []string{"AC 4H 7D KC"}, false)
	assert.True(t, errors.Is(err, deck.ErrMalformedHand))
}

func Test_evaluate_strict(t *testing.T) {
	h, err := evaluate("KC KC 2D 3H 4S", false)
	assert.NoError(t, err)
	assert.Equal(t, "Pair", h.Category().String())

	h, err = evaluate("KC KC 2D 3H 4S", true)
	assert.Nil(t, h)
	assert.EqualError(t, err, "KC KC 2D 3H 4S: duplicate cards: KC")
}
