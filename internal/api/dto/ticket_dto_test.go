package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantNew bool
		wantID  int64
		wantErr bool
	}{
		{name: "new marker", payload: `"(New)"`, wantNew: true},
		{name: "numeric id", payload: `12`, wantID: 12},
		{name: "zero is new", payload: `0`, wantNew: true},
		{name: "unknown string", payload: `"later"`, wantErr: true},
		{name: "negative id", payload: `-4`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id TicketID
			err := json.Unmarshal([]byte(tt.payload), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNew, id.Identity().IsNew())
			if !tt.wantNew {
				assert.Equal(t, tt.wantID, id.Identity().Value())
			}
		})
	}
}

func TestTicketIDMarshal(t *testing.T) {
	var id TicketID
	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"(New)"`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`7`), &id))
	data, err = json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `7`, string(data))
}

func TestSaveTicketRequestDecodesFormShape(t *testing.T) {
	payload := `{"id":"(New)","customerId":3,"title":"Laptop repair","description":"","completed":false,"tech":"unassigned"}`

	var req SaveTicketRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.True(t, req.ID.Identity().IsNew())
	assert.Equal(t, int64(3), req.CustomerID)
	require.NotNil(t, req.Description)
	assert.Empty(t, *req.Description)
}
