package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterInvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"["}, nil)
	assert.ErrorContains(t, err, "invalid allow pattern")

	_, err = NewFilter(nil, []string{"(unclosed"})
	assert.ErrorContains(t, err, "invalid deny pattern")
}

func TestFilterAllowed(t *testing.T) {
	tests := []struct {
		name       string
		allow      []string
		deny       []string
		candidates []string
		want       bool
	}{
		{
			name:       "no patterns admits everything",
			candidates: []string{"device:vmhba0"},
			want:       true,
		},
		{
			name:       "deny match excludes",
			deny:       []string{"model:FC.*"},
			candidates: []string{"device:vmhba0", "model:FC Adapter", "key:key-1"},
			want:       false,
		},
		{
			name:       "deny wins over allow",
			allow:      []string{"device:vmhba0"},
			deny:       []string{"model:FC.*"},
			candidates: []string{"device:vmhba0", "model:FC Adapter", "key:key-1"},
			want:       false,
		},
		{
			name:       "empty allow list admits non-denied",
			deny:       []string{"model:FC.*"},
			candidates: []string{"device:vmhba1", "model:SAS Adapter"},
			want:       true,
		},
		{
			name:       "allow match on any candidate admits",
			allow:      []string{"^key:key-7$"},
			candidates: []string{"device:vmhba7", "model:whatever", "key:key-7"},
			want:       true,
		},
		{
			name:       "no allow match excludes",
			allow:      []string{"device:vmhba0"},
			candidates: []string{"device:vmhba3", "model:whatever", "key:key-3"},
			want:       false,
		},
		{
			name:       "regex search not full match",
			deny:       []string{"hba0"},
			candidates: []string{"device:vmhba0"},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.allow, tt.deny)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Allowed(tt.candidates...))
		})
	}
}
