package sasang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/saju"
	"github.com/warp/saju-engine/sasang"
)

func TestCatalog_CoversEveryConstitution(t *testing.T) {
	all := sasang.All()
	require.Len(t, all, 4)

	for i, c := range saju.ConstitutionTypes {
		info, ok := sasang.Get(c)
		require.True(t, ok, c)
		assert.Equal(t, c, info.Type)
		assert.Equal(t, c.Code(), info.Code)
		assert.Equal(t, c.Korean(), info.Name)
		assert.Equal(t, info, all[i])

		// pairing never points at an unknown type or at itself
		for _, other := range []saju.ConstitutionType{info.Compatibility.Best, info.Compatibility.Good, info.Compatibility.Caution} {
			assert.True(t, other.Valid())
			assert.NotEqual(t, c, other)
		}
	}
}

func TestCatalog_OrgansAgreeWithEngine(t *testing.T) {
	// The strong organ of each constitution is one of the five element organs.
	organs := map[string]bool{}
	for _, e := range saju.Elements {
		organs[e.Organ().Primary] = true
	}
	for _, info := range sasang.All() {
		assert.True(t, organs[info.StrongOrgan], info.StrongOrgan)
		assert.True(t, organs[info.WeakOrgan], info.WeakOrgan)
	}
}

func TestLookup(t *testing.T) {
	info, err := sasang.Lookup("soeum")
	require.NoError(t, err)
	assert.Equal(t, "감성 분석가", info.Nickname)

	info, err = sasang.Lookup("E")
	require.NoError(t, err)
	assert.Equal(t, saju.Taeeum, info.Type)
	assert.Equal(t, "약 40%", info.Percentage)

	_, err = sasang.Lookup("hyperyang")
	assert.ErrorIs(t, err, sasang.ErrUnknownType)
}

func TestGet_Unknown(t *testing.T) {
	_, ok := sasang.Get("nope")
	assert.False(t, ok)
}
