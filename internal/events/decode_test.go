package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		line string
		want Event
	}{
		{"new difficulty=Easy", NewGame{Difficulty: "Easy"}},
		{"n Expert", NewGame{Difficulty: "Expert"}},
		{"NEW difficulty=Very+Hard", NewGame{Difficulty: "Very Hard"}},
		{"reveal row=3&col=4", RevealAt{Row: 3, Col: 4}},
		{"o 0 9", RevealAt{Row: 0, Col: 9}},
		{"  reveal   col=1&row=2  ", RevealAt{Row: 2, Col: 1}},
		{"reveal row=-1&col=12", RevealAt{Row: -1, Col: 12}},
		{"flag row=2&col=2", FlagAt{Row: 2, Col: 2}},
		{"f 5 6", FlagAt{Row: 5, Col: 6}},
		{"flag row=1&col=1&extra=x", FlagAt{Row: 1, Col: 1}},
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			got, err := Decode(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecodeBad(t *testing.T) {
	testCases := []string{
		"",
		"chord row=1&col=1",
		"new",
		"reveal row=1",
		"reveal row=a&col=1",
		"o 1",
		"o 1 x",
		"f 1 2 3",
	}
	for _, line := range testCases {
		t.Run(line, func(t *testing.T) {
			ev, err := Decode(line)
			assert.Nil(t, ev)
			assert.ErrorIs(t, err, ErrBadEvent)
		})
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	for _, ev := range []Event{
		NewGame{Difficulty: "Easy"},
		NewGame{Difficulty: "Very Hard"},
		RevealAt{Row: 4, Col: 7},
		FlagAt{Row: 0, Col: 0},
	} {
		got, err := Decode(ev.(interface{ String() string }).String())
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}
}
