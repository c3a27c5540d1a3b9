package model

import "strings"

// SoleProprietorRecord is one fully-extracted <СвИП> record.
type SoleProprietorRecord struct {
	OGRNIP           string
	OGRNIPDate       string
	INN              string
	TerminationDate  string
	ExtractDate      string

	Person      Person
	Gender      Gender
	Citizenship CitizenshipInfo

	StatusCode        string
	TerminationMethod string

	Address      Address
	MainActivity Activity
	AdditionalActivities []Activity

	RegistrationAuthorityCode string
	RegistrationAuthorityName string
	TaxRegistration           TaxRegistration
	PensionRegistration       TaxRegistration
	SocialInsuranceRegistration TaxRegistration

	Licenses   []License
	History    []HistoryRecord
	Bankruptcy *BankruptcyInfo

	Email string
}

// IsValid reports whether the record satisfies spec §3's validity
// predicate: primary registration number, taxpayer number, and person
// last+first name all non-empty after trimming.
func (r *SoleProprietorRecord) IsValid() bool {
	return strings.TrimSpace(r.OGRNIP) != "" &&
		strings.TrimSpace(r.INN) != "" &&
		strings.TrimSpace(r.Person.Last) != "" &&
		strings.TrimSpace(r.Person.First) != ""
}

// ApplyDefaults finalises derived fields after extraction completes.
func (r *SoleProprietorRecord) ApplyDefaults() {
	r.Address.ApplyRegionFallback(r.RegistrationAuthorityCode)
	r.Address.BuildFullAddress()
}

// AllActivities returns the main activity (if set) followed by the
// additional activities.
func (r *SoleProprietorRecord) AllActivities() []Activity {
	out := make([]Activity, 0, len(r.AdditionalActivities)+1)
	if r.MainActivity.Code != "" {
		out = append(out, r.MainActivity)
	}
	out = append(out, r.AdditionalActivities...)
	return out
}

// FullName returns last+first+middle joined by a space.
func (r *SoleProprietorRecord) FullName() string { return r.Person.FullName() }

// ShortName returns last name plus initials.
func (r *SoleProprietorRecord) ShortName() string {
	initials := ""
	if r.Person.First != "" {
		initials += string([]rune(r.Person.First)[0]) + "."
	}
	if r.Person.Middle != "" {
		initials += string([]rune(r.Person.Middle)[0]) + "."
	}
	if initials == "" {
		return r.Person.Last
	}
	return r.Person.Last + " " + initials
}

// IsActive reports whether the SP has not been terminated.
func (r *SoleProprietorRecord) IsActive() bool { return r.TerminationDate == "" }
