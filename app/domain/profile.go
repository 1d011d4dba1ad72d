package domain

// ProfileStatus is the completeness status of a role profile. It gates the
// post-authentication navigation target.
type ProfileStatus string

const (
	ProfileStatusIncomplete ProfileStatus = "PROFILE_INCOMPLETE"
	ProfileStatusComplete   ProfileStatus = "PROFILE_COMPLETE"
	ProfileStatusUnknown    ProfileStatus = "UNKNOWN"
)

// ParseProfileStatus maps a backend status string to a ProfileStatus.
// Unrecognized values map to ProfileStatusUnknown so callers handle them in
// an explicit branch instead of a silent default.
func ParseProfileStatus(s string) ProfileStatus {
	switch s {
	case string(ProfileStatusIncomplete):
		return ProfileStatusIncomplete
	case string(ProfileStatusComplete):
		return ProfileStatusComplete
	default:
		return ProfileStatusUnknown
	}
}

// Role names as the backend reports them.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
)

// PatientProfile is the patient-specific part of a profile snapshot.
type PatientProfile struct {
	Status             string  `json:"status"`
	DateOfBirth        *string `json:"date_of_birth"`
	SexAssignedAtBirth *string `json:"sex_assigned_at_birth"`
	GenderIdentity     *string `json:"gender_identity"`
	BloodType          *string `json:"blood_type"`
}

// DoctorProfile is the doctor-specific part of a profile snapshot.
type DoctorProfile struct {
	Status         string    `json:"status"`
	LicenseNumber  *string   `json:"license_number"`
	Specialization *string   `json:"specialization"`
	Qualifications *[]string `json:"qualifications"`
	ClinicAddress  *string   `json:"clinic_address"`
}

// UserProfile is the backend's snapshot of a user. It is produced by the
// exchange and profile calls and cached locally; it is mutated only by
// re-fetch, never by client-side inference.
type UserProfile struct {
	InternalUserID string          `json:"internal_user_id"`
	CognitoSub     *string         `json:"cognito_sub"`
	PhoneNumber    *string         `json:"phone_number"`
	FirstName      *string         `json:"first_name"`
	LastName       *string         `json:"last_name"`
	Email          *string         `json:"email"`
	Roles          []string        `json:"roles"`
	PatientProfile *PatientProfile `json:"patient_profile"`
	DoctorProfile  *DoctorProfile  `json:"doctor_profile"`
}

// HasRole reports whether the profile carries the given role.
func (p *UserProfile) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Status returns the completeness status of the role profile the snapshot
// carries. A snapshot with neither role profile is reported as unknown.
func (p *UserProfile) Status() ProfileStatus {
	if p.PatientProfile != nil {
		return ParseProfileStatus(p.PatientProfile.Status)
	}
	if p.DoctorProfile != nil {
		return ParseProfileStatus(p.DoctorProfile.Status)
	}
	return ProfileStatusUnknown
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Clone returns a deep copy of the profile so callers can hand out
// snapshots without sharing the cached one.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	copied := *p
	copied.CognitoSub = cloneStr(p.CognitoSub)
	copied.PhoneNumber = cloneStr(p.PhoneNumber)
	copied.FirstName = cloneStr(p.FirstName)
	copied.LastName = cloneStr(p.LastName)
	copied.Email = cloneStr(p.Email)
	if p.Roles != nil {
		copied.Roles = append([]string(nil), p.Roles...)
	}
	if p.PatientProfile != nil {
		patient := *p.PatientProfile
		patient.DateOfBirth = cloneStr(p.PatientProfile.DateOfBirth)
		patient.SexAssignedAtBirth = cloneStr(p.PatientProfile.SexAssignedAtBirth)
		patient.GenderIdentity = cloneStr(p.PatientProfile.GenderIdentity)
		patient.BloodType = cloneStr(p.PatientProfile.BloodType)
		copied.PatientProfile = &patient
	}
	if p.DoctorProfile != nil {
		doctor := *p.DoctorProfile
		doctor.LicenseNumber = cloneStr(p.DoctorProfile.LicenseNumber)
		doctor.Specialization = cloneStr(p.DoctorProfile.Specialization)
		doctor.ClinicAddress = cloneStr(p.DoctorProfile.ClinicAddress)
		if p.DoctorProfile.Qualifications != nil {
			quals := append([]string(nil), *p.DoctorProfile.Qualifications...)
			doctor.Qualifications = &quals
		}
		copied.DoctorProfile = &doctor
	}
	return &copied
}

// ProfileData is the request body of the complete-profile call. Optional
// fields are pointers so unset ones serialize as null, matching what the
// backend expects for partial updates.
type ProfileData struct {
	FirstName   *string `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	AbhaID      *string `json:"abha_id"`
	PhoneNumber *string `json:"phone_number"`

	// Patient-specific fields.
	DateOfBirth        *string `json:"date_of_birth"`
	SexAssignedAtBirth *string `json:"sex_assigned_at_birth"`
	GenderIdentity     *string `json:"gender_identity"`
	BloodType          *string `json:"blood_type"`

	// Doctor-specific fields.
	LicenseNumber  *string   `json:"license_number"`
	Specialization *string   `json:"specialization"`
	Qualifications *[]string `json:"qualifications"`
	ClinicAddress  *string   `json:"clinic_address"`
}
