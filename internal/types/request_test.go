package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request GenerateRequest
		wantErr bool
	}{
		{name: "minimal", request: GenerateRequest{PortalID: "farm"}},
		{name: "full", request: GenerateRequest{PortalID: "farm", Device: "mobile", Mode: "advanced", Variant: "kids", Seed: 3}},
		{name: "missing portal", request: GenerateRequest{Device: "desktop"}, wantErr: true},
		{name: "bad device", request: GenerateRequest{PortalID: "farm", Device: "tv"}, wantErr: true},
		{name: "bad mode", request: GenerateRequest{PortalID: "farm", Mode: "hard"}, wantErr: true},
		{name: "bad variant", request: GenerateRequest{PortalID: "farm", Variant: "adult"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRequest_Validation(t *testing.T) {
	valid := CheckRequest{ItemCode: "rd", RequiredCodes: []Code{"r"}}
	assert.NoError(t, valid.Validate())

	noCodes := CheckRequest{ItemCode: "rd"}
	assert.Error(t, noCodes.Validate())

	tooMany := CheckRequest{ItemCode: "r", RequiredCodes: []Code{"a", "b", "c"}}
	assert.Error(t, tooMany.Validate())

	longCode := CheckRequest{ItemCode: "abc", RequiredCodes: []Code{"a"}}
	assert.Error(t, longCode.Validate())
}

func TestModeAndLevelType(t *testing.T) {
	m, err := ParseGameMode("")
	assert.NoError(t, err)
	assert.Equal(t, ModeSimple, m)
	assert.False(t, m.ExtraItems())
	assert.True(t, ModeAdvanced.ExtraItems())

	_, err = ParseGameMode("expert")
	assert.Error(t, err)

	assert.Equal(t, LevelExtended, LevelTypeFor(true))
	assert.Equal(t, LevelStandard, LevelTypeFor(false))
	assert.True(t, VariantKids.ReservesSpecialized())
	assert.False(t, VariantExpert.ReservesSpecialized())
}
