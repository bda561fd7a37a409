package idx_test

import (
	"testing"
	"time"

	"github.com/auswiki/auswiki/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseCanonicalizesCase(t *testing.T) {
	upper, err := idx.Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	lower, err := idx.Parse("01arz3ndektsv4rrffq69g5fav")
	require.NoError(t, err)

	require.Equal(t, upper, lower)
	require.Zero(t, idx.Compare(upper, lower))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too short", "01ABC"},
		{"not base32", "!!!!!!!!!!!!!!!!!!!!!!!!!!"},
		{"mongo style hex id", "507f1f77bcf86cd799439011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idx.Parse(tt.input)
			require.ErrorIs(t, err, idx.ErrInvalid)
		})
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.Equal(t, tm, id.Time())
	require.True(t, idx.Zero.Time().IsZero())
}
