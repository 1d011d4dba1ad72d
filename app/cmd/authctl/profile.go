package main

import (
	"github.com/spf13/cobra"

	"auth-client/app/domain"
)

// completeProfileConfig holds configuration for the complete-profile command.
type completeProfileConfig struct {
	firstName   string
	middleName  string
	lastName    string
	email       string
	abhaID      string
	phoneNumber string

	dateOfBirth        string
	sexAssignedAtBirth string
	genderIdentity     string
	bloodType          string

	licenseNumber  string
	specialization string
	qualifications []string
	clinicAddress  string
}

// NewCompleteProfileCmd creates the complete-profile subcommand.
func NewCompleteProfileCmd() *cobra.Command {
	cfg := &completeProfileConfig{}

	cmd := &cobra.Command{
		Use:   "complete-profile",
		Short: "Submit the profile completion form",
		Long: `Submit the profile completion form for the signed-in account.
Only the flags you pass are sent; everything else stays null so the
backend treats it as unset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompleteProfile(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&cfg.middleName, "middle-name", "", "middle name")
	cmd.Flags().StringVar(&cfg.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&cfg.email, "email", "", "contact email")
	cmd.Flags().StringVar(&cfg.abhaID, "abha-id", "", "ABHA health account ID")
	cmd.Flags().StringVar(&cfg.phoneNumber, "phone", "", "phone number")

	cmd.Flags().StringVar(&cfg.dateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cfg.sexAssignedAtBirth, "sex-assigned-at-birth", "", "sex assigned at birth")
	cmd.Flags().StringVar(&cfg.genderIdentity, "gender-identity", "", "gender identity")
	cmd.Flags().StringVar(&cfg.bloodType, "blood-type", "", "blood type")

	cmd.Flags().StringVar(&cfg.licenseNumber, "license-number", "", "medical license number")
	cmd.Flags().StringVar(&cfg.specialization, "specialization", "", "medical specialization")
	cmd.Flags().StringSliceVar(&cfg.qualifications, "qualification", nil, "qualification (repeatable)")
	cmd.Flags().StringVar(&cfg.clinicAddress, "clinic-address", "", "clinic address")

	return cmd
}

func runCompleteProfile(cmd *cobra.Command, cfg *completeProfileConfig) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}

	if _, err := container.AuthUsecase.RestoreSession(cmd.Context()); err != nil {
		return userError(err)
	}

	state, err := container.AuthUsecase.CompleteProfile(cmd.Context(), cfg.toProfileData())
	if err != nil {
		return userError(err)
	}

	printState(cmd, state)
	return nil
}

// toProfileData maps the set flags to the request body, leaving unset fields
// nil so they serialize as null.
func (cfg *completeProfileConfig) toProfileData() *domain.ProfileData {
	data := &domain.ProfileData{
		FirstName:          optional(cfg.firstName),
		MiddleName:         optional(cfg.middleName),
		LastName:           optional(cfg.lastName),
		Email:              optional(cfg.email),
		AbhaID:             optional(cfg.abhaID),
		PhoneNumber:        optional(cfg.phoneNumber),
		DateOfBirth:        optional(cfg.dateOfBirth),
		SexAssignedAtBirth: optional(cfg.sexAssignedAtBirth),
		GenderIdentity:     optional(cfg.genderIdentity),
		BloodType:          optional(cfg.bloodType),
		LicenseNumber:      optional(cfg.licenseNumber),
		Specialization:     optional(cfg.specialization),
		ClinicAddress:      optional(cfg.clinicAddress),
	}
	if len(cfg.qualifications) > 0 {
		data.Qualifications = &cfg.qualifications
	}
	return data
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
