package initializers

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pashkovdenis/thoughtmodel"
	"github.com/pashkovdenis/thoughtmodel/mathutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDefaultInitializer(t *testing.T) {
	def := thoughtmodel.DefaultInitializer()
	require.NotNil(t, def)
	assert.IsType(t, estimate{}, def)
}

func TestEstimate(t *testing.T) {
	a, err := Estimate(seeded()).Weight(10)
	require.NoError(t, err)

	b, err := mathutil.RandomNormalEstimate(seeded(), 10)
	require.NoError(t, err)
	assert.Equal(t, b, a)

	_, err = Estimate(seeded()).Weight(0)
	assert.True(t, errors.Is(err, mathutil.ErrInvalidArgument))
}

func TestVarianceScaling(t *testing.T) {
	in := He(seeded())
	for _, fanIn := range []int{1, 2, 10} {
		limit := 2 * math.Sqrt(2/float64(fanIn))
		for i := 0; i < 100; i++ {
			w, err := in.Weight(fanIn)
			require.NoError(t, err)
			assert.True(t, math.Abs(w) <= limit, "weight %v beyond truncation %v", w, limit)
		}
	}

	_, err := LeCun(seeded()).Weight(0)
	assert.True(t, errors.Is(err, mathutil.ErrInvalidArgument))
}

func TestVarianceScaling_Truncated(t *testing.T) {
	for name, in := range map[string]*varianceScaling{
		"he":    He(seeded()),
		"lecun": LeCun(seeded()),
		"x4":    VarianceScaling(seeded()).Factor(4),
	} {
		limit := 2 * math.Sqrt(in.factor)
		for i := 0; i < 5000; i++ {
			w, err := in.Weight(1)
			require.NoError(t, err, name)
			require.True(t, math.Abs(w) <= limit, "%s: weight %v beyond truncation %v", name, w, limit)
		}
	}
}

func TestUniform(t *testing.T) {
	in := Uniform(seeded()).Range(3, -3)
	for i := 0; i < 200; i++ {
		w, err := in.Weight(1)
		require.NoError(t, err)
		assert.True(t, w >= -3 && w < 3)
		assert.NotZero(t, w)
	}
}

func TestUniform_ZeroRange(t *testing.T) {
	_, err := Uniform(seeded()).Range(0, 0).Weight(1)
	assert.True(t, errors.Is(err, mathutil.ErrInvalidArgument))

	w, err := Uniform(seeded()).Range(0, 2).Weight(1)
	require.NoError(t, err)
	assert.True(t, w > 0 && w < 2)
}

func TestRNGs(t *testing.T) {
	u := UniformRNG(seeded()).Bounds(5, 6)
	n := TruncNormalRNG(seeded()).Mean(10).SD(0.5).Trunc(1)
	for i := 0; i < 200; i++ {
		v := u.Gen()
		assert.True(t, v >= 5 && v < 6)

		v = n.Gen()
		assert.True(t, v >= 9.5 && v <= 10.5)
	}

	assert.Panics(t, func() { TruncNormalRNG(seeded()).Trunc(0) })
}

func TestTruncNormalRNG_Setters(t *testing.T) {
	n := TruncNormalRNG(seeded()).SD(3).Mean(-1)
	assert.IsType(t, &truncNormal{}, n)
	assert.Equal(t, 3.0, n.σ)
	assert.Equal(t, -1.0, n.µ)

	for i := 0; i < 5000; i++ {
		v := n.Gen()
		require.True(t, v >= -7 && v <= 5, "value %v outside 2 sds of -1", v)
	}
}

func TestConstant(t *testing.T) {
	w, err := Constant(0.25).Weight(0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, w)

	w, err = Random(UniformRNG(seeded()).Bounds(1, 1)).Weight(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"estimate", "he", "lecun", "normal", "uniform"}, Names())

	for _, name := range Names() {
		in, err := ByName(name, seeded())
		require.NoError(t, err, name)

		w, err := in.Weight(2)
		require.NoError(t, err, name)
		assert.False(t, math.IsNaN(w) || math.IsInf(w, 0), name)
	}

	in, err := ByName("estimate", nil)
	require.NoError(t, err)
	_, err = in.Weight(3)
	require.NoError(t, err)

	_, err = ByName("glorot", nil)
	assert.Error(t, err)
}

func TestSetDefault(t *testing.T) {
	require.NoError(t, SetDefault("uniform-upper", 4))
	defer SetDefault("uniform-upper", 1)

	assert.Equal(t, 4.0, UniformRNG(seeded()).upper)

	assert.Error(t, SetDefault("does-not-exist", 1))
	assert.Error(t, SetDefault("normal-sd", math.Inf(1)))
}
