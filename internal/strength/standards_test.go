package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStandards(t *testing.T) {
	require.NoError(t, ValidateStandards())
}

func TestStandardFor(t *testing.T) {
	entry, ok := StandardFor("bench press")
	require.True(t, ok)
	assert.Equal(t, BaseBodyweight, entry.BaseType)
	assert.Equal(t, 1.00, entry.Standards[GenderMale].Intermediate)
	assert.Equal(t, 1.25, entry.Standards[GenderMale].Advanced)
	assert.Equal(t, 1.50, entry.Standards[GenderMale].Elite)

	// raw vendor names resolve through normalization
	aliased, ok := StandardFor("EGYM Chest Press")
	require.True(t, ok)
	assert.Equal(t, entry, aliased)

	_, ok = StandardFor("underwater basket weaving")
	assert.False(t, ok)
}

func TestStandardTypeFor(t *testing.T) {
	baseType, ok := StandardTypeFor("deadlift")
	require.True(t, ok)
	assert.Equal(t, BaseBodyweight, baseType)

	baseType, ok = StandardTypeFor("Seated Leg Curl")
	require.True(t, ok)
	assert.Equal(t, BaseMuscleMass, baseType)

	_, ok = StandardTypeFor("unknown")
	assert.False(t, ok)
}
