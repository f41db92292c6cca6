package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTally(t *testing.T) {
	n, err := parseTally("12")
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)

	for _, bad := range []string{"12abc", "", " 3", "1.5", "0x10"} {
		_, err := parseTally(bad)
		assert.Error(t, err, "tally %q", bad)
	}
}
