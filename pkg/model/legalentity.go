package model

import "strings"

// RegistrationBlock carries the LE's primary state-registration
// identity and its first certificate triple.
type RegistrationBlock struct {
	OGRN              string
	OGRNDate          string
	RegistrationDate  string
	CertificateSeries string
	CertificateNumber string
	CertificateDate   string
}

// HeadOfficer is the LE's единоличный исполнительный орган.
type HeadOfficer struct {
	Person   Person
	Position string
	GRN      string
}

// TaxRegistration is a registration with a tax/pension/social-insurance
// authority.
type TaxRegistration struct {
	Date            string
	AuthorityCode   string
	AuthorityName   string
	RegistrationNum string
}

// LegalEntityRecord is one fully-extracted <СвЮЛ> record.
type LegalEntityRecord struct {
	OGRN             string
	OGRNDate         string
	INN              string
	KPP              string
	FullName         string
	ShortName        string
	BrandName        string
	OPFCode          string
	OPFName          string
	StatusCode       string
	RegistrationDate string
	TerminationDate  string
	TerminationMethod string
	ExtractDate      string

	Registration RegistrationBlock
	Address      Address
	HeadOfficer  HeadOfficer
	Founders     []Founder
	MainActivity Activity
	AdditionalActivities []Activity
	Capital      Capital

	RegistrationAuthorityCode string
	RegistrationAuthorityName string
	TaxRegistration           TaxRegistration
	PensionRegistration       TaxRegistration
	SocialInsuranceRegistration TaxRegistration

	Branches     []Branch
	Licenses     []License
	History      []HistoryRecord
	Bankruptcy   *BankruptcyInfo
	Reorganization *ReorganizationInfo
	Liquidation  *LiquidationInfo

	Email string
}

// IsValid reports whether the record satisfies spec §3's validity
// predicate: primary registration number, taxpayer number, and full
// name all non-empty after trimming.
func (r *LegalEntityRecord) IsValid() bool {
	return strings.TrimSpace(r.OGRN) != "" &&
		strings.TrimSpace(r.INN) != "" &&
		strings.TrimSpace(r.FullName) != ""
}

// ApplyDefaults fills RegistrationDate from OGRNDate when absent, and
// backfills the registration certificate from the first history entry
// that carries one, per spec §3/§4.3.
func (r *LegalEntityRecord) ApplyDefaults() {
	if r.RegistrationDate == "" {
		r.RegistrationDate = r.OGRNDate
	}
	if r.Registration.RegistrationDate == "" {
		r.Registration.RegistrationDate = r.RegistrationDate
	}
	if r.Registration.OGRN == "" {
		r.Registration.OGRN = r.OGRN
	}
	if r.Registration.OGRNDate == "" {
		r.Registration.OGRNDate = r.OGRNDate
	}

	if r.Registration.CertificateSeries == "" || r.Registration.CertificateNumber == "" || r.Registration.CertificateDate == "" {
		for _, h := range r.History {
			if h.HasCertificate() {
				r.Registration.CertificateSeries = h.CertificateSeries
				r.Registration.CertificateNumber = h.CertificateNumber
				r.Registration.CertificateDate = h.CertificateDate
				break
			}
		}
	}

	r.Address.ApplyRegionFallback(r.RegistrationAuthorityCode)
	r.Address.BuildFullAddress()
}

// AllActivities returns the main activity (if set) followed by the
// additional activities.
func (r *LegalEntityRecord) AllActivities() []Activity {
	out := make([]Activity, 0, len(r.AdditionalActivities)+1)
	if r.MainActivity.Code != "" {
		out = append(out, r.MainActivity)
	}
	out = append(out, r.AdditionalActivities...)
	return out
}

// FoundersCount reports the number of founders, including zero when
// <СвУчредит> had no recognised children.
func (r *LegalEntityRecord) FoundersCount() int { return len(r.Founders) }

// IsActive reports whether the LE has not been terminated.
func (r *LegalEntityRecord) IsActive() bool { return r.TerminationDate == "" }
