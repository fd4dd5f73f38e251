package core

import (
	"testing"

	"github.com/mitchelldurbincs/yahtzee/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandRollUnkeptRollsEverythingInitially(t *testing.T) {
	src := testutil.NewFaceSource(3, 1, 4, 1, 5)
	h := NewHand(src)
	assert.False(t, h.Rolled())

	h.RollUnkept()

	assert.True(t, h.Rolled())
	assert.Equal(t, [HandSize]int{3, 1, 4, 1, 5}, h.Values())
	assert.Equal(t, HandSize, src.Calls())
}

func TestHandRollUnkeptHonorsRetention(t *testing.T) {
	src := testutil.NewFaceSource(1, 2, 3, 4, 5, 6, 6, 6)
	h := NewHand(src)
	h.RollUnkept()

	h.SetRetention([]int{1, 3, 3, 5})
	h.RollUnkept()

	assert.Equal(t, [HandSize]int{1, 6, 3, 6, 5}, h.Values())
	assert.Equal(t, 7, src.Calls(), "only the two unkept dice roll again")
}

func TestHandSetRetentionIgnoresOutOfRange(t *testing.T) {
	h := NewHand(testutil.NewTestRNG(1))
	h.SetRetention([]int{0, 2, 6, -1, 2, 4})
	assert.Equal(t, []int{2, 4}, h.Kept())

	h.SetRetention(nil)
	assert.Empty(t, h.Kept(), "new retention replaces the old mask")
}

func TestHandClearRetention(t *testing.T) {
	h := NewHand(testutil.NewTestRNG(1))
	h.SetRetention([]int{1, 2, 3, 4, 5})
	h.ClearRetention()
	assert.Empty(t, h.Kept())
}

func TestHandValuesIsSnapshot(t *testing.T) {
	h, err := NewHandOf([HandSize]int{2, 2, 3, 3, 3})
	require.NoError(t, err)

	values := h.Values()
	values[0] = 6
	assert.Equal(t, [HandSize]int{2, 2, 3, 3, 3}, h.Values())
}

func TestNewHandOfRejectsBadFace(t *testing.T) {
	_, err := NewHandOf([HandSize]int{1, 2, 3, 9, 5})
	assert.ErrorIs(t, err, ErrInvalidFace)
	assert.Contains(t, err.Error(), "die 4")
}

func TestParseRetention(t *testing.T) {
	tests := []struct {
		token string
		want  []int
	}{
		{"12345", []int{1, 2, 3, 4, 5}},
		{"531", []int{1, 3, 5}},
		{"1122", []int{1, 2}},
		{"0", nil},
		{"6789", nil},
		{"-", nil},
		{"keep 2 and 4", []int{2, 4}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRetention(tt.token))
		})
	}
}
