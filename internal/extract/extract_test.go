package extract

import (
	"strings"
	"testing"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkLEMinimal(t *testing.T) {
	xmlDoc := `<ФАЙЛ><Документ><СвЮЛ ОГРН="1234567890123" ИНН="1234567890" ДатаОГРН="2020-01-01" СтатусЮЛ="актив"><СвНаим НаимПолн="ООО ТЕСТ" НаимСокр="ТЕСТ"/></СвЮЛ></Документ></ФАЙЛ>`

	var got []*model.LegalEntityRecord
	err := WalkLE(strings.NewReader(xmlDoc), func(r *model.LegalEntityRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, "1234567890123", r.OGRN)
	assert.Equal(t, "1234567890", r.INN)
	assert.Equal(t, "ООО ТЕСТ", r.FullName)
	assert.Equal(t, "ТЕСТ", r.ShortName)
	assert.Equal(t, "актив", r.StatusCode)
	assert.Equal(t, "2020-01-01", r.OGRNDate)
	assert.Equal(t, "2020-01-01", r.RegistrationDate)
}

func TestWalkSPWithGender(t *testing.T) {
	xmlDoc := `<СвИП ОГРНИП="123456789012345" ИНН="123456789012"><СвФЛ Пол="1"><ФИОРус Фамилия="Иванов" Имя="Иван" Отчество="Иванович"/></СвФЛ></СвИП>`

	var got []*model.SoleProprietorRecord
	err := WalkSP(strings.NewReader(xmlDoc), func(r *model.SoleProprietorRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, model.GenderMale, r.Gender)
	assert.Equal(t, "Иванов", r.Person.Last)
	assert.Equal(t, "Иван", r.Person.First)
	assert.Equal(t, "Иванович", r.Person.Middle)
}

func TestAddressRegionFallbackFromTaxCode(t *testing.T) {
	xmlDoc := `<СвЮЛ ОГРН="1234567890123" ИНН="1234567890"><СвНаим НаимПолн="ООО ТЕСТ"/><СвАдресЮЛ/><СвРегОрг КодНО="77001"/></СвЮЛ>`

	var got []*model.LegalEntityRecord
	err := WalkLE(strings.NewReader(xmlDoc), func(r *model.LegalEntityRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "77", got[0].Address.RegionCode)
}

func TestHistorySourcedCertificate(t *testing.T) {
	xmlDoc := `<СвЮЛ ОГРН="1234567890123" ИНН="1234567890"><СвНаим НаимПолн="ООО ТЕСТ"/>` +
		`<СвЗапЕГРЮЛ ГРН="1"><СвСвид Серия="77" Номер="000123" ДатаВыдСвид="2010-05-01"/></СвЗапЕГРЮЛ></СвЮЛ>`

	var got []*model.LegalEntityRecord
	err := WalkLE(strings.NewReader(xmlDoc), func(r *model.LegalEntityRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	reg := got[0].Registration
	assert.Equal(t, "77", reg.CertificateSeries)
	assert.Equal(t, "000123", reg.CertificateNumber)
	assert.Equal(t, "2010-05-01", reg.CertificateDate)
}

func TestFIASAddressBuildingAndRoomFields(t *testing.T) {
	xmlDoc := `<СвИП ОГРНИП="123456789012345" ИНН="123456789012">` +
		`<СвАдрМЖ><Здание Тип="д" Номер="5"/><ПомещЗдания Тип="под" Номер="2"/>` +
		`<ПомещКвартиры Тип="оф" Номер="301"/><ПомещКвартиры Тип="ком" Номер="4"/></СвАдрМЖ></СвИП>`

	var got []*model.SoleProprietorRecord
	err := WalkSP(strings.NewReader(xmlDoc), func(r *model.SoleProprietorRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	addr := got[0].Address
	assert.Equal(t, "д5", addr.House)
	assert.Equal(t, "под2, оф301, ком4", addr.Flat, "ПомещЗдания fills Flat first (set-if-empty), then ПомещКвартиры always appends")
}

func TestFIASFlatRoomsAppendWithoutBuildingRoom(t *testing.T) {
	xmlDoc := `<СвИП ОГРНИП="123456789012345" ИНН="123456789012">` +
		`<СвАдрМЖ><ПомещКвартиры Тип="оф" Номер="301"/><ПомещКвартиры Тип="ком" Номер="4"/></СвАдрМЖ></СвИП>`

	var got []*model.SoleProprietorRecord
	err := WalkSP(strings.NewReader(xmlDoc), func(r *model.SoleProprietorRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "оф301, ком4", got[0].Address.Flat)
}

func TestZeroRecordRootsYieldsZeroRecords(t *testing.T) {
	var count int
	err := WalkLE(strings.NewReader(`<ФАЙЛ><Документ/></ФАЙЛ>`), func(r *model.LegalEntityRecord) {
		count++
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFoundersBlockWithNoChildrenYieldsZeroCount(t *testing.T) {
	xmlDoc := `<СвЮЛ ОГРН="1234567890123" ИНН="1234567890"><СвНаим НаимПолн="ООО ТЕСТ"/><СвУчредит/></СвЮЛ>`

	var got []*model.LegalEntityRecord
	err := WalkLE(strings.NewReader(xmlDoc), func(r *model.LegalEntityRecord) {
		got = append(got, r)
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].FoundersCount())
}

func TestClassifyByContent(t *testing.T) {
	kind, err := Classify("somefile.xml", `<ФАЙЛ><СвЮЛ ОГРН="1"/></ФАЙЛ>`)
	require.NoError(t, err)
	assert.Equal(t, model.LE, kind)

	kind, err = Classify("somefile.xml", `<ФАЙЛ><СвИП ОГРНИП="1"/></ФАЙЛ>`)
	require.NoError(t, err)
	assert.Equal(t, model.SP, kind)
}

func TestClassifyByFilenameFallback(t *testing.T) {
	kind, err := Classify("EGRUL_20200101_77.XML", "<ФАЙЛ/>")
	require.NoError(t, err)
	assert.Equal(t, model.LE, kind)
}

func TestClassifyUnknown(t *testing.T) {
	_, err := Classify("data.xml", "<ФАЙЛ/>")
	assert.Error(t, err)
}

func TestInvalidRecordDiscarded(t *testing.T) {
	// Missing full name after trim -> invalid, must not be emitted.
	xmlDoc := `<СвЮЛ ОГРН="1234567890123" ИНН="1234567890"><СвНаим НаимПолн="   "/></СвЮЛ>`
	var count int
	err := WalkLE(strings.NewReader(xmlDoc), func(r *model.LegalEntityRecord) { count++ }, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
