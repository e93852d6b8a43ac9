package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCouponSet_AddAndGet(t *testing.T) {
	set := NewMapCouponSet(10).(*mapCouponSet)

	set.Add(Coupon{Code: "SAVE10", Percent: 10})
	set.Add(Coupon{Code: "EID25", Percent: 25})

	c, ok := set.Get("SAVE10")
	assert.True(t, ok)
	assert.Equal(t, 10.0, c.Percent)

	_, ok = set.Get("NOTEXIST")
	assert.False(t, ok)
	assert.Equal(t, 2, set.Size())
}

func TestMapCouponSet_DuplicateKeepsLargerPercent(t *testing.T) {
	tests := []struct {
		name     string
		percents []float64
		expected float64
	}{
		{name: "Larger second", percents: []float64{10, 20}, expected: 20},
		{name: "Smaller second", percents: []float64{20, 10}, expected: 20},
		{name: "Equal", percents: []float64{15, 15}, expected: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewMapCouponSet(2).(*mapCouponSet)
			for _, p := range tt.percents {
				set.Add(Coupon{Code: "SAVEMORE", Percent: p})
			}

			c, ok := set.Get("SAVEMORE")
			assert.True(t, ok)
			assert.Equal(t, tt.expected, c.Percent)
			assert.Equal(t, 1, set.Size())
		})
	}
}

func TestMapCouponSet_Empty(t *testing.T) {
	set := NewMapCouponSet(0)

	assert.Equal(t, 0, set.Size())
	_, ok := set.Get("")
	assert.False(t, ok)
}
