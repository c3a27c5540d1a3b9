package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharePercentCanonical(t *testing.T) {
	s := Share{Numerator: 1, Denominator: 3}
	assert.InDelta(t, 33.333333, s.PercentCanonical(), 0.0001)

	s2 := Share{Percent: 50}
	assert.Equal(t, 50.0, s2.PercentCanonical())
}

func TestBuildFullAddressSynthesis(t *testing.T) {
	a := Address{
		PostalCode: "123456",
		RegionName: "г. Москва",
		City:       "Москва",
		Street:     "Тверская",
		House:      "1",
		Building:   "2",
		Flat:       "10",
	}
	a.BuildFullAddress()
	assert.Equal(t, "123456, г. Москва, г. Москва, ул. Тверская, д. 1, корп. 2, кв. 10", a.FullAddress)
}

func TestBuildFullAddressPreservesVerbatim(t *testing.T) {
	a := Address{FullAddress: "verbatim from source"}
	a.BuildFullAddress()
	assert.Equal(t, "verbatim from source", a.FullAddress)
}

func TestApplyRegionFallback(t *testing.T) {
	a := Address{}
	a.ApplyRegionFallback("77001")
	assert.Equal(t, "77", a.RegionCode)

	already := Address{RegionCode: "50"}
	already.ApplyRegionFallback("77001")
	assert.Equal(t, "50", already.RegionCode)
}

func TestLegalEntityApplyDefaultsCertificateBackfill(t *testing.T) {
	r := &LegalEntityRecord{
		OGRN: "1234567890123",
		INN:  "1234567890",
		FullName: "ООО ТЕСТ",
		OGRNDate: "2020-01-01",
		History: []HistoryRecord{
			{GRN: "1", CertificateSeries: "77", CertificateNumber: "000123", CertificateDate: "2010-05-01"},
		},
	}
	r.ApplyDefaults()
	assert.Equal(t, "2020-01-01", r.RegistrationDate)
	assert.Equal(t, "77", r.Registration.CertificateSeries)
	assert.Equal(t, "000123", r.Registration.CertificateNumber)
	assert.Equal(t, "2010-05-01", r.Registration.CertificateDate)
}

func TestLegalEntityValidity(t *testing.T) {
	r := &LegalEntityRecord{OGRN: "1", INN: "2", FullName: "x"}
	assert.True(t, r.IsValid())
	r.FullName = "   "
	assert.False(t, r.IsValid())
}

func TestSoleProprietorValidity(t *testing.T) {
	r := &SoleProprietorRecord{OGRNIP: "1", INN: "2", Person: Person{Last: "Иванов", First: "Иван"}}
	assert.True(t, r.IsValid())
	r.Person.First = ""
	assert.False(t, r.IsValid())
}

func TestFoundersCountZeroForEmptyBlock(t *testing.T) {
	r := &LegalEntityRecord{}
	assert.Equal(t, 0, r.FoundersCount())
}

func TestGenderFromCode(t *testing.T) {
	assert.Equal(t, GenderMale, GenderFromCode("1"))
	assert.Equal(t, GenderFemale, GenderFromCode("2"))
	assert.Equal(t, GenderUnknown, GenderFromCode(""))
}
