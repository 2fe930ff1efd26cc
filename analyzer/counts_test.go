package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
	"github.com/tsinghua-fib-lab/montecarlo-sim/game"
)

func fixed(rows ...[]die.Face) *Analyzer {
	return &Analyzer{results: game.NewResults(rows)}
}

func TestCountsOnFixedResults(t *testing.T) {
	a := fixed(
		die.IntFaces(1, 2),
		die.IntFaces(2, 1),
		die.IntFaces(3, 3),
		die.IntFaces(1, 2),
		die.IntFaces(6, 6),
	)

	assert.Equal(t, 2, a.Jackpot())

	assert.Equal(t, Counts{
		{Faces: die.IntFaces(1, 2), Count: 3},
		{Faces: die.IntFaces(3, 3), Count: 1},
		{Faces: die.IntFaces(6, 6), Count: 1},
	}, a.ComboCount())

	assert.Equal(t, Counts{
		{Faces: die.IntFaces(1, 2), Count: 2},
		{Faces: die.IntFaces(2, 1), Count: 1},
		{Faces: die.IntFaces(3, 3), Count: 1},
		{Faces: die.IntFaces(6, 6), Count: 1},
	}, a.PermutationCount())

	fc := a.FaceCountsPerRoll()
	assert.Equal(t, die.IntFaces(1, 2, 3, 6), fc.Faces)
	assert.Equal(t, [][]int{
		{1, 1, 0, 1, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 2, 0, 0},
		{0, 0, 0, 0, 2},
	}, fc.Counts)
	assert.Equal(t, 2, fc.Count(die.IntFace(6), 4))
	assert.Equal(t, 0, fc.Count(die.IntFace(5), 4))
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, fc.Columns())

	// queries do not mutate the snapshot
	assert.Equal(t, die.IntFaces(2, 1), a.Results().Row(1))
}

func TestCountsStringFaces(t *testing.T) {
	a := fixed(
		die.StringFaces("T", "H"),
		die.StringFaces("H", "T"),
		die.StringFaces("H", "H"),
	)
	assert.Equal(t, 1, a.Jackpot())
	assert.Equal(t, Counts{
		{Faces: die.StringFaces("H", "T"), Count: 2},
		{Faces: die.StringFaces("H", "H"), Count: 1},
	}, a.ComboCount())
	perms := a.PermutationCount()
	assert.Len(t, perms, 3)
	// ties ordered lexicographically
	assert.Equal(t, die.StringFaces("H", "H"), perms[0].Faces)
	assert.Equal(t, die.StringFaces("H", "T"), perms[1].Faces)
	assert.Equal(t, die.StringFaces("T", "H"), perms[2].Faces)
}
