package die_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
	"github.com/tsinghua-fib-lab/montecarlo-sim/utils/randengine"
)

func newSixSided(t *testing.T) *die.Die {
	d, err := die.NewInts([]int{1, 2, 3, 4, 5, 6}, die.WithSeed(1))
	require.NoError(t, err)
	return d
}

func TestDieInit(t *testing.T) {
	d := newSixSided(t)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, die.IntFaces(1, 2, 3, 4, 5, 6), d.Faces())
	show := d.Show()
	require.Len(t, show, 6)
	for i, fw := range show {
		assert.Equal(t, die.IntFace(int64(i+1)), fw.Face)
		assert.Equal(t, 1.0, fw.Weight)
	}
}

func TestDieInitErrors(t *testing.T) {
	_, err := die.NewInts([]int{1, 2, 2})
	assert.ErrorIs(t, err, die.ErrDuplicateFace)

	_, err = die.New(nil)
	assert.ErrorIs(t, err, die.ErrNoFaces)

	_, err = die.New([]die.Face{die.IntFace(1), die.StringFace("a")})
	assert.ErrorIs(t, err, die.ErrInvalidType)

	_, err = die.New([]die.Face{die.IntFace(1), {}})
	assert.ErrorIs(t, err, die.ErrInvalidType)
}

func TestDieChangeWeight(t *testing.T) {
	d := newSixSided(t)
	require.NoError(t, d.ChangeWeight(die.IntFace(1), 2.0))
	w, err := d.Weight(die.IntFace(1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	// other faces untouched
	w, err = d.Weight(die.IntFace(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	assert.ErrorIs(t, d.ChangeWeight(die.IntFace(7), 1.0), die.ErrFaceNotFound)
	assert.ErrorIs(t, d.ChangeWeight(die.StringFace("1"), 1.0), die.ErrFaceNotFound)
	_, err = d.Weight(die.IntFace(7))
	assert.ErrorIs(t, err, die.ErrFaceNotFound)
}

func TestDieSetWeight(t *testing.T) {
	d := newSixSided(t)
	require.NoError(t, d.SetWeight(die.IntFace(3), 4))
	require.NoError(t, d.SetWeight(die.IntFace(4), float32(0.5)))
	require.NoError(t, d.SetWeight(die.IntFace(5), uint8(2)))
	w, _ := d.Weight(die.IntFace(3))
	assert.Equal(t, 4.0, w)
	w, _ = d.Weight(die.IntFace(4))
	assert.Equal(t, 0.5, w)

	for _, bad := range []any{"a", true, nil, []float64{1}} {
		assert.ErrorIs(t, d.SetWeight(die.IntFace(1), bad), die.ErrInvalidType, "weight %v", bad)
		// type is checked before the face
		assert.ErrorIs(t, d.SetWeight(die.IntFace(7), bad), die.ErrInvalidType, "weight %v", bad)
	}
	assert.ErrorIs(t, d.SetWeight(die.IntFace(7), 1), die.ErrFaceNotFound)
}

func TestDieRoll(t *testing.T) {
	d := newSixSided(t)
	faces := d.Faces()
	for _, n := range []int{1, 5, 100} {
		rolls, err := d.Roll(n)
		require.NoError(t, err)
		assert.Len(t, rolls, n)
		for _, f := range rolls {
			assert.Contains(t, faces, f)
		}
	}
	rolls, err := d.Roll(0)
	require.NoError(t, err)
	assert.Empty(t, rolls)

	_, err = d.Roll(-1)
	assert.ErrorIs(t, err, die.ErrInvalidRolls)
}

func TestDieRollZeroWeight(t *testing.T) {
	coin, err := die.NewStrings([]string{"H", "T"}, die.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, coin.ChangeWeight(die.StringFace("H"), 0.0))
	for k := 0; k < 10; k++ {
		rolls, err := coin.Roll(50)
		require.NoError(t, err)
		for _, f := range rolls {
			assert.Equal(t, die.StringFace("T"), f)
		}
	}
}

func TestDieRollInvalidWeights(t *testing.T) {
	coin, err := die.NewStrings([]string{"H", "T"})
	require.NoError(t, err)
	require.NoError(t, coin.ChangeWeight(die.StringFace("H"), -1))
	_, err = coin.Roll(1)
	assert.ErrorIs(t, err, randengine.ErrInvalidWeights)

	require.NoError(t, coin.ChangeWeight(die.StringFace("H"), 0))
	require.NoError(t, coin.ChangeWeight(die.StringFace("T"), 0))
	_, err = coin.Roll(1)
	assert.ErrorIs(t, err, randengine.ErrInvalidWeights)
}

func TestDieRollDeterministic(t *testing.T) {
	d1, err := die.NewInts([]int{1, 2, 3}, die.WithSeed(99))
	require.NoError(t, err)
	d2, err := die.NewInts([]int{1, 2, 3}, die.WithEngine(randengine.New(99)))
	require.NoError(t, err)
	r1, err := d1.Roll(50)
	require.NoError(t, err)
	r2, err := d2.Roll(50)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestDieShowIsCopy(t *testing.T) {
	d := newSixSided(t)
	show := d.Show()
	show[0].Weight = 100
	w, _ := d.Weight(die.IntFace(1))
	assert.Equal(t, 1.0, w)

	faces := d.Faces()
	faces[0] = die.IntFace(42)
	assert.Equal(t, die.IntFace(1), d.Faces()[0])
}
