package extract

import (
	"encoding/xml"
	"io"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
	"github.com/kmakeev/egrul-go/internal/xmlattr"
)

// WalkSP scans r for <СвИП> record-root elements, symmetrical to
// WalkLE.
func WalkSP(r io.Reader, emit func(*model.SoleProprietorRecord), onError func(error)) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return types.XMLError(err, "scanning for SP record root")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || !xmlattr.TagMatches(start.Name, spRecordRootTags...) {
			continue
		}
		rec, perr := parseSPRecord(dec, start)
		if perr != nil {
			if onError != nil {
				onError(perr)
			}
			continue
		}
		rec.ApplyDefaults()
		if !rec.IsValid() {
			continue
		}
		emit(rec)
	}
}

func parseSPRecord(dec *xml.Decoder, start xml.StartElement) (*model.SoleProprietorRecord, error) {
	rec := &model.SoleProprietorRecord{}
	rec.OGRNIP, _ = firstAttr(start, ogrnipAttrs...)
	rec.OGRNIPDate, _ = firstAttr(start, ogrnipDateAttrs...)
	rec.INN, _ = firstAttr(start, innAttrs...)
	rec.ExtractDate, _ = firstAttr(start, dataVypAttrs...)

	// Name attributes carried on the record root element itself. A
	// direct <ФИОРус>/<ФИОИП>/<ФИО> child, the alternative to the
	// nested <СвФЛ>, is handled in dispatchSPChild.
	rec.Person.Last, _ = firstAttr(start, lastNameAttrs...)
	rec.Person.First, _ = firstAttr(start, firstNameAttrs...)
	rec.Person.Middle, _ = firstAttr(start, middleNameAttrs...)

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, types.XMLError(err, "parsing SP record %s", rec.OGRNIP)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if err := dispatchSPChild(dec, t, rec); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if depth == 0 {
				return rec, nil
			}
			depth--
		}
	}
}

func dispatchSPChild(dec *xml.Decoder, t xml.StartElement, rec *model.SoleProprietorRecord) error {
	switch {
	case xmlattr.TagMatches(t.Name, spPersonTags...):
		return parseSPPerson(dec, t, rec)

	case xmlattr.TagMatches(t.Name, fioTags...):
		if v, ok := firstAttr(t, lastNameAttrs...); ok {
			setFirst(&rec.Person.Last, v)
		}
		if v, ok := firstAttr(t, firstNameAttrs...); ok {
			setFirst(&rec.Person.First, v)
		}
		if v, ok := firstAttr(t, middleNameAttrs...); ok {
			setFirst(&rec.Person.Middle, v)
		}
		return skipElement(dec)

	case xmlattr.TagMatches(t.Name, citizenshipTags...):
		if v, ok := firstAttr(t, citizenshipKindAttrs...); ok {
			rec.Citizenship.Kind = model.CitizenshipKindFromCode(v)
		}
		rec.Citizenship.OKSMCode, _ = firstAttr(t, oksmAttrs...)
		rec.Citizenship.CountryName, _ = firstAttr(t, countryNameAttrs...)
		return skipElement(dec)

	case xmlattr.TagMatches(t.Name, spStatusTags...):
		if v, ok := firstAttr(t, spStatusCodeAttrs...); ok {
			setFirst(&rec.StatusCode, v)
		}
		if v, ok := firstAttr(t, spTermDateAttrs...); ok {
			setFirst(&rec.TerminationDate, v)
		}
		return skipElement(dec)

	case xmlattr.TagMatches(t.Name, spAddressTags...):
		return parseAddress(dec, t, &rec.Address)

	case xmlattr.TagMatches(t.Name, okvedBlockTags...):
		return parseActivities(dec, &rec.MainActivity, &rec.AdditionalActivities)

	case xmlattr.TagMatches(t.Name, regOrgTags...):
		code, name, err := parseRegOrg(dec, t)
		if err != nil {
			return err
		}
		setFirst(&rec.RegistrationAuthorityCode, code)
		setFirst(&rec.RegistrationAuthorityName, name)
		return nil

	case xmlattr.TagMatches(t.Name, append(append([]string{}, taxRegTags...), spRegTags...)...):
		reg, err := parseTaxRegistration(dec, t)
		if err != nil {
			return err
		}
		rec.TaxRegistration = reg
		return nil

	case xmlattr.TagMatches(t.Name, pensionRegTags...):
		reg, err := parseTaxRegistration(dec, t)
		if err != nil {
			return err
		}
		rec.PensionRegistration = reg
		return nil

	case xmlattr.TagMatches(t.Name, fssRegTags...):
		reg, err := parseTaxRegistration(dec, t)
		if err != nil {
			return err
		}
		rec.SocialInsuranceRegistration = reg
		return nil

	case xmlattr.TagMatches(t.Name, spHistoryTags...):
		h, err := parseHistoryEntry(dec, t, spHistoryGRNAttrs)
		if err != nil {
			return err
		}
		rec.History = append(rec.History, h)
		return nil

	case xmlattr.TagMatches(t.Name, contactTags...):
		email, err := parseContact(dec, t)
		if err != nil {
			return err
		}
		setFirst(&rec.Email, email)
		return nil

	case xmlattr.TagMatches(t.Name, terminationTags...):
		if v, ok := firstAttr(t, terminationDateAttrs...); ok {
			setFirst(&rec.TerminationDate, v)
		}
		if v, ok := firstAttr(t, terminationMethodAttrs...); ok {
			setFirst(&rec.TerminationMethod, v)
		}
		return skipElement(dec)

	default:
		return skipElement(dec)
	}
}

// parseSPPerson reads the nested <СвФЛ> block, which also carries the
// gender attribute (Пол), per spec example #2.
func parseSPPerson(dec *xml.Decoder, start xml.StartElement, rec *model.SoleProprietorRecord) error {
	if v, ok := firstAttr(start, genderAttrs...); ok {
		rec.Gender = model.GenderFromCode(v)
	}

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return types.XMLError(err, "parsing SP person block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if xmlattr.TagMatches(t.Name, fioTags...) {
				if v, ok := firstAttr(t, lastNameAttrs...); ok {
					setFirst(&rec.Person.Last, v)
				}
				if v, ok := firstAttr(t, firstNameAttrs...); ok {
					setFirst(&rec.Person.First, v)
				}
				if v, ok := firstAttr(t, middleNameAttrs...); ok {
					setFirst(&rec.Person.Middle, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			} else {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}
