package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_UnmarshalJSON(t *testing.T) {
	var v struct {
		Name  String `json:"name"`
		Temp  String `json:"temp"`
		Flag  String `json:"flag"`
		Empty String `json:"empty"`
		Gone  String `json:"gone"`
		Obj   String `json:"obj"`
	}
	err := json.Unmarshal([]byte(`{"name":"Maria","temp":37.5,"flag":true,"empty":null,"obj":{"a":1}}`), &v)
	require.NoError(t, err)

	assert.Equal(t, NewString("Maria"), v.Name)
	assert.Equal(t, "37.5", v.Temp.ForceValue())
	assert.Equal(t, "true", v.Flag.ForceValue())
	assert.True(t, v.Empty.IsNil())
	assert.True(t, v.Gone.IsNil())
	assert.True(t, v.Obj.IsNil())
}

func TestString_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A String `json:"a"`
		B String `json:"b"`
	}{A: NewString("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))
}

func TestString_Or(t *testing.T) {
	assert.Equal(t, "N/A", String{}.Or("N/A"))
	assert.Equal(t, "N/A", NewString("   ").Or("N/A"))
	assert.Equal(t, "Cruz", NewString(" Cruz ").Or("N/A"))
}
