package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateMemberRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     CreateMemberRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateMemberRequest{Email: "willow@coven.example", CraftName: "Willow"},
		},
		{
			name:    "missing email",
			req:     CreateMemberRequest{CraftName: "Willow"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     CreateMemberRequest{Email: "not-an-email", CraftName: "Willow"},
			wantErr: true,
		},
		{
			name:    "missing craft name",
			req:     CreateMemberRequest{Email: "willow@coven.example"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if tt.wantErr {
				assert.NotNil(t, errs)
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestGrimoireCategoryRule(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(&CreateGrimoireEntryRequest{Category: "spells"}))
	assert.Nil(t, v.Validate(&CreateGrimoireEntryRequest{Category: ""}))
	assert.NotNil(t, v.Validate(&CreateGrimoireEntryRequest{Category: "potions"}))
}

func TestModuleStatusRule(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(&UpdateModuleStatusRequest{Status: "Completed"}))
	assert.Nil(t, v.Validate(&UpdateModuleStatusRequest{Status: "In Progress"}))
	assert.NotNil(t, v.Validate(&UpdateModuleStatusRequest{Status: "Done"}))
	assert.NotNil(t, v.Validate(&UpdateModuleStatusRequest{Status: ""}))
}

func TestValidationErrorsMessage(t *testing.T) {
	v := New()

	errs := v.Validate(&CreateMemberRequest{})
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs.Error())
}
