package model

import "encoding/json"

// Founder is a closed sum of five shapes a founder/participant row in
// <СвУчредит> may take. Each carries its own Share; pattern-match on
// the concrete type rather than collapsing the shapes into one
// superset struct — the shapes have different identities and mostly
// disjoint fields.
type Founder interface {
	Share() Share
	founderSealed()
}

// PersonFounder is an individual participant.
type PersonFounder struct {
	Person    Person
	ShareInfo Share
}

func (f PersonFounder) Share() Share { return f.ShareInfo }
func (PersonFounder) founderSealed() {}

func (f PersonFounder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string  `json:"kind"`
		Person  Person  `json:"person"`
		Share   Share   `json:"share"`
		Percent float64 `json:"percent"`
	}{"person", f.Person, f.ShareInfo, f.ShareInfo.PercentCanonical()})
}

// DomesticLegalEntityFounder is a Russian legal entity participant.
type DomesticLegalEntityFounder struct {
	OGRN      string
	INN       string
	FullName  string
	ShareInfo Share
}

func (f DomesticLegalEntityFounder) Share() Share       { return f.ShareInfo }
func (DomesticLegalEntityFounder) founderSealed() {}

func (f DomesticLegalEntityFounder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string  `json:"kind"`
		OGRN     string  `json:"ogrn"`
		INN      string  `json:"inn"`
		FullName string  `json:"full_name"`
		Share    Share   `json:"share"`
		Percent  float64 `json:"percent"`
	}{"domestic_legal_entity", f.OGRN, f.INN, f.FullName, f.ShareInfo, f.ShareInfo.PercentCanonical()})
}

// ForeignLegalEntityFounder is a foreign legal entity participant.
type ForeignLegalEntityFounder struct {
	RegistrationCountry string
	RegistrationNumber  string
	FullName            string
	ShareInfo           Share
}

func (f ForeignLegalEntityFounder) Share() Share      { return f.ShareInfo }
func (ForeignLegalEntityFounder) founderSealed() {}

func (f ForeignLegalEntityFounder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind                string  `json:"kind"`
		RegistrationCountry string  `json:"registration_country"`
		RegistrationNumber  string  `json:"registration_number"`
		FullName            string  `json:"full_name"`
		Share               Share   `json:"share"`
		Percent             float64 `json:"percent"`
	}{"foreign_legal_entity", f.RegistrationCountry, f.RegistrationNumber, f.FullName, f.ShareInfo, f.ShareInfo.PercentCanonical()})
}

// PublicEntityFounder is the Russian Federation, a constituent
// subject, or a municipal entity acting as a founder.
type PublicEntityFounder struct {
	Kind      string // e.g. "RussianFederation", "Subject", "Municipal"
	Name      string
	ShareInfo Share
}

func (f PublicEntityFounder) Share() Share    { return f.ShareInfo }
func (PublicEntityFounder) founderSealed() {}

func (f PublicEntityFounder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string  `json:"kind"`
		EntityKind string  `json:"entity_kind"`
		Name       string  `json:"name"`
		Share      Share   `json:"share"`
		Percent    float64 `json:"percent"`
	}{"public_entity", f.Kind, f.Name, f.ShareInfo, f.ShareInfo.PercentCanonical()})
}

// MutualFundFounder is a paired mutual investment fund participant.
type MutualFundFounder struct {
	Name            string
	ManagingCompany string
	ShareInfo       Share
}

func (f MutualFundFounder) Share() Share  { return f.ShareInfo }
func (MutualFundFounder) founderSealed() {}

func (f MutualFundFounder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind            string  `json:"kind"`
		Name            string  `json:"name"`
		ManagingCompany string  `json:"managing_company"`
		Share           Share   `json:"share"`
		Percent         float64 `json:"percent"`
	}{"mutual_fund", f.Name, f.ManagingCompany, f.ShareInfo, f.ShareInfo.PercentCanonical()})
}
