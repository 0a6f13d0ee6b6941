package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFilterValue(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		want      int64
	}{
		{name: "empty selection is all", selection: "", want: FilterAll},
		{name: "uncategorised token", selection: SelectionUncategorised, want: FilterUncategorised},
		{name: "numeric id string", selection: "7", want: 7},
		{name: "garbage falls back to all", selection: "not-a-number", want: FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFilterValue(tt.selection))
		})
	}
}
