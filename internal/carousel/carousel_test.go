package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCyclesBackToStart(t *testing.T) {
	for _, n := range []int{2, 3, 7} {
		s := New(n)
		for i := 0; i < n; i++ {
			s = s.Next()
		}
		assert.Equal(t, 0, s.Current, "count=%d", n)
	}
}

func TestPrevIsInverseOfNext(t *testing.T) {
	s := New(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, s.Current, s.Next().Prev().Current)
		assert.Equal(t, s.Current, s.Prev().Next().Current)
		s = s.Next()
	}
}

func TestPrevWrapsAround(t *testing.T) {
	s := New(4)
	assert.Equal(t, 3, s.Prev().Current)
}

func TestSingleImageHasNoControls(t *testing.T) {
	for _, n := range []int{0, 1} {
		s := New(n)
		assert.False(t, s.HasControls())
		// Geçişler durumu değiştirmez
		assert.Equal(t, 0, s.Next().Current)
		assert.Equal(t, 0, s.Prev().Current)
	}
	assert.True(t, New(2).HasControls())
}

func TestGoTo(t *testing.T) {
	s := New(4)
	assert.Equal(t, 2, s.GoTo(2).Current)

	// Aralık dışı indeksler yok sayılır
	assert.Equal(t, 0, s.GoTo(4).Current)
	assert.Equal(t, 0, s.GoTo(-1).Current)
}

func TestFromQuery(t *testing.T) {
	assert.Equal(t, 2, FromQuery("2", 4).Current)
	assert.Equal(t, 0, FromQuery("", 4).Current)
	assert.Equal(t, 0, FromQuery("abc", 4).Current)
	assert.Equal(t, 0, FromQuery("9", 4).Current)
	assert.Equal(t, 0, FromQuery("1", 1).Current)
}

func TestOffset(t *testing.T) {
	s := New(3)
	assert.Equal(t, "-0%", s.Offset())
	assert.Equal(t, "-100%", s.Next().Offset())
	assert.Equal(t, "-200%", s.Next().Next().Offset())
}

func TestDots(t *testing.T) {
	s := New(3).GoTo(1)
	dots := s.Dots()
	assert.Len(t, dots, 3)
	assert.False(t, dots[0].Active)
	assert.True(t, dots[1].Active)
	assert.False(t, dots[2].Active)

	assert.Nil(t, New(0).Dots())
}
