package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "string", input: `"1/2"`, want: "1/2"},
		{name: "integer", input: `2`, want: "2"},
		{name: "float", input: `0.5`, want: "0.5"},
		{name: "empty string", input: `""`, want: ""},
		{name: "bool", input: `true`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestRecipeIngredientListNumericQuantity(t *testing.T) {
	var list RecipeIngredientList
	err := json.Unmarshal([]byte(`[{"name": "egg", "quantity": 2, "unit": "pieces"}]`), &list)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, Amount("2"), list[0].Quantity)
}
