package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    Element
		wantErr bool
	}{
		{raw: "Fire", want: Fire},
		{raw: "  water ", want: Water},
		{raw: "LIGHTNING", want: Lightning},
		{raw: "ice", want: Ice},
		{raw: "plasma", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, Invalid, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllIsACopy(t *testing.T) {
	list := All()
	require.Len(t, list, 6)
	list[0] = Ice
	assert.Equal(t, Fire, All()[0])
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Element Element `json:"element"`
	}
	data, err := json.Marshal(wrapper{Element: Wind})
	require.NoError(t, err)
	assert.JSONEq(t, `{"element":"Wind"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"element":"earth"}`), &w))
	assert.Equal(t, Earth, w.Element)

	require.Error(t, json.Unmarshal([]byte(`{"element":"mud"}`), &w))
}

func TestInvalidElementDoesNotMarshal(t *testing.T) {
	_, err := json.Marshal(struct{ E Element }{})
	require.Error(t, err)
	assert.Equal(t, "Invalid", Invalid.String())
}
