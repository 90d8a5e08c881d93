package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`7`, "7", true},
		{`"7"`, "7", true},
		{`" 3f0c7a52-4f1e-4c1b-9e55-0a7d2f3c9b11 "`, "3f0c7a52-4f1e-4c1b-9e55-0a7d2f3c9b11", true},
		{`12.50`, "12.50", true},
		{`""`, "", false},
		{`null`, "", false},
	}
	for _, c := range cases {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(c.in), &r), c.in)
		got, ok := r.Value()
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{`true`, `{}`, `[1]`} {
		var r Ref
		assert.Error(t, json.Unmarshal([]byte(bad), &r), bad)
	}
}

func TestRef_AbsentAndFirst(t *testing.T) {
	var in RecipeIngredientInput
	require.NoError(t, json.Unmarshal([]byte(`{"ingredientId": 9}`), &in))
	_, ok := in.IngredientID.Value()
	assert.False(t, ok)

	v, ok := FirstRef(in.IngredientIDAlt, in.IngredientID).Value()
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	data, err := json.Marshal(in.IngredientID)
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
}
