package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityNew(t *testing.T) {
	id := NewIdentity()
	assert.True(t, id.IsNew())
	assert.Equal(t, "(new)", id.String())
	assert.Panics(t, func() { id.Value() })
}

func TestIdentityExisting(t *testing.T) {
	id := ExistingIdentity(7)
	assert.False(t, id.IsNew())
	assert.Equal(t, int64(7), id.Value())
	assert.Equal(t, "7", id.String())
}

func TestIdentityNonPositiveIsNew(t *testing.T) {
	assert.True(t, ExistingIdentity(0).IsNew())
	assert.True(t, ExistingIdentity(-3).IsNew())
}

func TestTicketAssigned(t *testing.T) {
	assert.False(t, (&Ticket{Tech: TechUnassigned}).Assigned())
	assert.False(t, (&Ticket{Tech: ""}).Assigned())
	assert.True(t, (&Ticket{Tech: "sam@example.com"}).Assigned())
}
