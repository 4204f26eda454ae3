package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSetChanged(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		after  []string
		want   bool
	}{
		{
			name:   "identical sets",
			before: []string{"a", "b"},
			after:  []string{"a", "b"},
			want:   false,
		},
		{
			name:   "same sets in different order",
			before: []string{"a", "b"},
			after:  []string{"b", "a"},
			want:   false,
		},
		{
			name:   "role added",
			before: []string{"a"},
			after:  []string{"a", "b"},
			want:   true,
		},
		{
			name:   "role removed",
			before: []string{"a", "b"},
			after:  []string{"a"},
			want:   true,
		},
		{
			name:   "role swapped",
			before: []string{"a", "b"},
			after:  []string{"a", "c"},
			want:   true,
		},
		{
			name:   "both empty",
			before: nil,
			after:  nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roleSetChanged(tt.before, tt.after))
		})
	}
}
