package narray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_Normalize(t *testing.T) {
	const extent = 10

	tests := []struct {
		name       string
		span       Span
		wantStart  int
		wantLength int
	}{
		{name: "between", span: Between(2, 5), wantStart: 2, wantLength: 3},
		{name: "from", span: From(4), wantStart: 4, wantLength: 6},
		{name: "to", span: To(3), wantStart: 0, wantLength: 3},
		{name: "all", span: All(), wantStart: 0, wantLength: 10},
		{name: "through", span: Through(2, 5), wantStart: 2, wantLength: 4},
		{name: "to through", span: ToThrough(5), wantStart: 0, wantLength: 6},
		{name: "through last index", span: Through(9, 9), wantStart: 9, wantLength: 1},
		{name: "between full extent", span: Between(0, 10), wantStart: 0, wantLength: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, err := tt.span.normalize(extent)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantLength, length)
		})
	}
}

func TestSpan_NormalizeErrors(t *testing.T) {
	const extent = 10

	tests := []struct {
		name string
		span Span
	}{
		{name: "end past extent", span: Between(0, 11)},
		{name: "inclusive end at extent", span: Through(0, 10)},
		{name: "start past extent", span: From(10)},
		{name: "empty", span: Between(3, 3)},
		{name: "reversed", span: Between(5, 2)},
		{name: "negative start", span: Between(-1, 3)},
		{name: "negative end", span: To(-2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.span.normalize(extent)
			require.ErrorIs(t, err, ErrIndexOutOfBounds)
		})
	}
}

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "2..5", Between(2, 5).String())
	assert.Equal(t, "4..", From(4).String())
	assert.Equal(t, "..3", To(3).String())
	assert.Equal(t, "..", All().String())
	assert.Equal(t, "2..=5", Through(2, 5).String())
	assert.Equal(t, "..=5", ToThrough(5).String())
}
