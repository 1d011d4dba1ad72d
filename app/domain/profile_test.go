package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ProfileStatus
	}{
		{"incomplete", "PROFILE_INCOMPLETE", ProfileStatusIncomplete},
		{"complete", "PROFILE_COMPLETE", ProfileStatusComplete},
		{"unrecognized value", "PROFILE_ARCHIVED", ProfileStatusUnknown},
		{"empty", "", ProfileStatusUnknown},
		{"lowercase is not recognized", "profile_complete", ProfileStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProfileStatus(tt.input))
		})
	}
}

func TestUserProfile_Status(t *testing.T) {
	tests := []struct {
		name    string
		profile *UserProfile
		want    ProfileStatus
	}{
		{
			name: "patient profile drives the status",
			profile: &UserProfile{
				Roles:          []string{RolePatient},
				PatientProfile: &PatientProfile{Status: "PROFILE_INCOMPLETE"},
			},
			want: ProfileStatusIncomplete,
		},
		{
			name: "doctor profile drives the status when no patient profile",
			profile: &UserProfile{
				Roles:         []string{RoleDoctor},
				DoctorProfile: &DoctorProfile{Status: "PROFILE_COMPLETE"},
			},
			want: ProfileStatusComplete,
		},
		{
			name:    "no role profile at all",
			profile: &UserProfile{Roles: []string{RolePatient}},
			want:    ProfileStatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Status())
		})
	}
}

func TestUserProfile_HasRole(t *testing.T) {
	p := &UserProfile{Roles: []string{RolePatient}}
	assert.True(t, p.HasRole(RolePatient))
	assert.False(t, p.HasRole(RoleDoctor))
}

func TestUserProfile_CloneIsIndependent(t *testing.T) {
	first := "A"
	quals := []string{"MBBS"}
	original := &UserProfile{
		InternalUserID: "user-1",
		FirstName:      &first,
		Roles:          []string{RoleDoctor},
		PatientProfile: &PatientProfile{Status: "PROFILE_COMPLETE"},
		DoctorProfile:  &DoctorProfile{Status: "PROFILE_COMPLETE", Qualifications: &quals},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Roles[0] = RolePatient
	*clone.FirstName = "B"
	clone.PatientProfile.Status = "PROFILE_INCOMPLETE"
	clone.DoctorProfile.Status = "PROFILE_INCOMPLETE"
	(*clone.DoctorProfile.Qualifications)[0] = "changed"

	assert.Equal(t, []string{RoleDoctor}, original.Roles)
	assert.Equal(t, "A", *original.FirstName)
	assert.Equal(t, "PROFILE_COMPLETE", original.PatientProfile.Status)
	assert.Equal(t, "PROFILE_COMPLETE", original.DoctorProfile.Status)
	assert.Equal(t, []string{"MBBS"}, *original.DoctorProfile.Qualifications)
}

func TestUserProfile_CloneNil(t *testing.T) {
	var p *UserProfile
	assert.Nil(t, p.Clone())
}

func TestUserProfile_JSONRoundTrip(t *testing.T) {
	first := "A"
	original := &UserProfile{
		InternalUserID: "user-1",
		FirstName:      &first,
		Roles:          []string{RolePatient},
		PatientProfile: &PatientProfile{Status: "PROFILE_COMPLETE"},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	restored := &UserProfile{}
	require.NoError(t, json.Unmarshal(raw, restored))

	assert.Equal(t, original, restored)
	assert.Equal(t, ProfileStatusComplete, restored.Status())
}

func TestProfileData_UnsetFieldsSerializeAsNull(t *testing.T) {
	first := "Asha"
	data := &ProfileData{FirstName: &first}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Asha", decoded["first_name"])
	val, present := decoded["last_name"]
	assert.True(t, present, "optional fields must be sent as explicit nulls")
	assert.Nil(t, val)
}
