// Package extract implements the LE and SP registry extractors (spec
// §4.3) and the registry dispatcher (spec §4.4). Each extractor walks
// the document event stream one top-level record at a time; every
// sub-parser for a nested block consumes through its own matching End
// event before returning, so the top-level walker's depth counter only
// ever needs to track elements it does not itself recognise — this
// replaces the source's compensating double-decrement pattern (spec §9).
package extract

import (
	"encoding/xml"
	"io"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
	"github.com/kmakeev/egrul-go/internal/xmlattr"
)

// WalkLE scans r for <СвЮЛ> record-root elements and invokes emit for
// each successfully extracted record. A parse error inside one record
// is reported via onError (if non-nil) and that record is discarded;
// the scan continues with the next record-root. WalkLE returns a
// non-nil error only for a failure at the outer token stream (e.g.
// truncated/malformed XML outside any record).
func WalkLE(r io.Reader, emit func(*model.LegalEntityRecord), onError func(error)) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return types.XMLError(err, "scanning for LE record root")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || !xmlattr.TagMatches(start.Name, leRecordRootTags...) {
			continue
		}
		rec, perr := parseLERecord(dec, start)
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

func parseLERecord(dec *xml.Decoder, start xml.StartElement) (*model.LegalEntityRecord, error) {
	rec := &model.LegalEntityRecord{}
	rec.OGRN, _ = firstAttr(start, ogrnAttrs...)
	rec.OGRNDate, _ = firstAttr(start, ogrnDateAttrs...)
	rec.INN, _ = firstAttr(start, innAttrs...)
	rec.KPP, _ = firstAttr(start, kppAttrs...)
	rec.StatusCode, _ = firstAttr(start, statusAttrs...)
	rec.OPFCode, _ = firstAttr(start, opfCodeAttrs...)
	rec.OPFName, _ = firstAttr(start, opfNameAttrs...)

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, types.XMLError(err, "parsing LE record %s", rec.OGRN)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if err := dispatchLEChild(dec, t, rec); err != nil {
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

// dispatchLEChild handles one direct child of the LE record root. When
// the tag is recognised, the matching sub-parser is invoked (which
// consumes through its own End); otherwise the element is skipped.
func dispatchLEChild(dec *xml.Decoder, t xml.StartElement, rec *model.LegalEntityRecord) error {
	switch {
	case xmlattr.TagMatches(t.Name, leNamingTags...):
		if v, ok := firstAttr(t, fullNameAttrs...); ok {
			setFirst(&rec.FullName, v)
		}
		if v, ok := firstAttr(t, shortNameAttrs...); ok {
			setFirst(&rec.ShortName, v)
		}
		if v, ok := firstAttr(t, brandNameAttrs...); ok {
			setFirst(&rec.BrandName, v)
		}
		return skipElement(dec)

	case xmlattr.TagMatches(t.Name, addressTags...):
		return parseAddress(dec, t, &rec.Address)

	case xmlattr.TagMatches(t.Name, capitalTags...):
		return parseCapital(dec, t, &rec.Capital)

	case xmlattr.TagMatches(t.Name, okvedBlockTags...):
		return parseActivities(dec, &rec.MainActivity, &rec.AdditionalActivities)

	case xmlattr.TagMatches(t.Name, headOfficerTags...):
		ho, err := parseHeadOfficer(dec, t)
		if err != nil {
			return err
		}
		rec.HeadOfficer = ho
		return nil

	case xmlattr.TagMatches(t.Name, foundersBlockTags...):
		founders, err := parseFounders(dec)
		if err != nil {
			return err
		}
		rec.Founders = founders
		return nil

	case xmlattr.TagMatches(t.Name, regOrgTags...):
		code, name, err := parseRegOrg(dec, t)
		if err != nil {
			return err
		}
		setFirst(&rec.RegistrationAuthorityCode, code)
		setFirst(&rec.RegistrationAuthorityName, name)
		return nil

	case xmlattr.TagMatches(t.Name, taxRegTags...):
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

	case xmlattr.TagMatches(t.Name, leHistoryTags...):
		h, err := parseHistoryEntry(dec, t, leHistoryGRNAttrs)
		if err != nil {
			return err
		}
		rec.History = append(rec.History, h)
		return nil

	case xmlattr.TagMatches(t.Name, []string{"СвСтатус", "СвСтатусЮЛ", "SvStatus", "SvStatusUL"}...):
		if v, ok := firstAttr(t, []string{"КодСтатусЮЛ", "КодСтатус", "KodStatusUL", "KodStatus"}...); ok {
			setFirst(&rec.StatusCode, v)
		}
		return skipElement(dec)

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

func parseHeadOfficer(dec *xml.Decoder, start xml.StartElement) (model.HeadOfficer, error) {
	var ho model.HeadOfficer
	ho.Position, _ = firstAttr(start, headPositionAttrs...)
	ho.GRN, _ = firstAttr(start, headGRNAttrs...)
	ho.Person.Last, _ = firstAttr(start, lastNameAttrs...)
	ho.Person.First, _ = firstAttr(start, firstNameAttrs...)
	ho.Person.Middle, _ = firstAttr(start, middleNameAttrs...)
	ho.Person.INN, _ = firstAttr(start, innAttrs...)

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return ho, types.XMLError(err, "parsing head officer block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if xmlattr.TagMatches(t.Name, headPersonTags...) {
				if v, ok := firstAttr(t, lastNameAttrs...); ok {
					setFirst(&ho.Person.Last, v)
				}
				if v, ok := firstAttr(t, firstNameAttrs...); ok {
					setFirst(&ho.Person.First, v)
				}
				if v, ok := firstAttr(t, middleNameAttrs...); ok {
					setFirst(&ho.Person.Middle, v)
				}
				if err := skipElement(dec); err != nil {
					return ho, err
				}
			} else {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return ho, nil
			}
			depth--
		}
	}
}
