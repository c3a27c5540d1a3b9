package extract

import (
	"encoding/xml"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
	"github.com/kmakeev/egrul-go/internal/xmlattr"
)

// parseCapital reads <SvUstKap SumKap="..." NaimVal=".../>. Currency
// defaults to "рубль" when absent, per spec §4.3.
func parseCapital(dec *xml.Decoder, start xml.StartElement, cap *model.Capital) error {
	if v, ok, _ := xmlattr.Float(start.Attr, capitalSumAttrs...); ok {
		cap.Amount = v
	}
	if v, ok := firstAttr(start, capitalValAttrs...); ok {
		cap.Currency = v
	} else if cap.Currency == "" {
		cap.Currency = "рубль"
	}
	return skipElement(dec)
}

// parseActivities reads <SvOKVED> and its SvOKVEDOsn/SvOKVEDDop
// children, setting main and appending to additional.
func parseActivities(dec *xml.Decoder, main *model.Activity, additional *[]model.Activity) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return types.XMLError(err, "parsing activity block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch {
			case xmlattr.TagMatches(t.Name, okvedMainTags...):
				*main = activityFrom(t, true)
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, okvedExtraTags...):
				*additional = append(*additional, activityFrom(t, false))
				if err := skipElement(dec); err != nil {
					return err
				}
			default:
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

func activityFrom(start xml.StartElement, isMain bool) model.Activity {
	a := model.Activity{IsMain: isMain}
	a.Code, _ = firstAttr(start, okvedCodeAttrs...)
	a.Name, _ = firstAttr(start, okvedNameAttrs...)
	a.Version, _ = firstAttr(start, okvedVerAttrs...)
	return a
}

// parseShare reads a nested <DolyaUstKap> share block.
func parseShare(dec *xml.Decoder, start xml.StartElement) (model.Share, error) {
	var s model.Share
	if v, ok, _ := xmlattr.Float(start.Attr, shareNominalAttrs...); ok {
		s.NominalValue = v
	}
	if v, ok, _ := xmlattr.Float(start.Attr, sharePercentAttrs...); ok {
		s.Percent = v
	}
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return s, types.XMLError(err, "parsing share block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if xmlattr.TagMatches(t.Name, shareTags...) {
				if v, ok, _ := xmlattr.Float(t.Attr, shareNumerAttrs...); ok {
					s.Numerator = v
				}
				if v, ok, _ := xmlattr.Float(t.Attr, shareDenomAttrs...); ok {
					s.Denominator = v
				}
				if err := skipElement(dec); err != nil {
					return s, err
				}
			} else {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return s, nil
			}
			depth--
		}
	}
}

// parseFounders reads the <SvUchredit> block, dispatching each known
// child tag to the matching Founder variant. Unknown children are
// skipped. A block with no recognised children yields a nil slice
// (founders_count = 0), per spec §8's boundary case.
func parseFounders(dec *xml.Decoder) ([]model.Founder, error) {
	var founders []model.Founder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return founders, types.XMLError(err, "parsing founders block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch {
			case xmlattr.TagMatches(t.Name, founderPersonTags...):
				f, err := parsePersonFounder(dec, t)
				if err != nil {
					return founders, err
				}
				founders = append(founders, f)
			case xmlattr.TagMatches(t.Name, founderDomesticTags...):
				f, err := parseDomesticFounder(dec, t)
				if err != nil {
					return founders, err
				}
				founders = append(founders, f)
			case xmlattr.TagMatches(t.Name, founderForeignTags...):
				f, err := parseForeignFounder(dec, t)
				if err != nil {
					return founders, err
				}
				founders = append(founders, f)
			case xmlattr.TagMatches(t.Name, founderPublicTags...):
				f, err := parsePublicFounder(dec, t)
				if err != nil {
					return founders, err
				}
				founders = append(founders, f)
			case xmlattr.TagMatches(t.Name, founderFundTags...):
				f, err := parseFundFounder(dec, t)
				if err != nil {
					return founders, err
				}
				founders = append(founders, f)
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return founders, nil
			}
			depth--
		}
	}
}

func consumeShare(dec *xml.Decoder, containerStart xml.StartElement) (model.Share, error) {
	var share model.Share
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return share, types.XMLError(err, "parsing founder block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if xmlattr.TagMatches(t.Name, []string{"ДоляУстКап", "DolyaUstKap"}...) {
				share, err = parseShare(dec, t)
				if err != nil {
					return share, err
				}
			} else {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return share, nil
			}
			depth--
		}
	}
}

func parsePersonFounder(dec *xml.Decoder, start xml.StartElement) (model.Founder, error) {
	p := model.Person{}
	p.Last, _ = firstAttr(start, lastNameAttrs...)
	p.First, _ = firstAttr(start, firstNameAttrs...)
	p.Middle, _ = firstAttr(start, middleNameAttrs...)
	p.INN, _ = firstAttr(start, innAttrs...)
	share, err := consumeShare(dec, start)
	if err != nil {
		return nil, err
	}
	return model.PersonFounder{Person: p, ShareInfo: share}, nil
}

func parseDomesticFounder(dec *xml.Decoder, start xml.StartElement) (model.Founder, error) {
	var f model.DomesticLegalEntityFounder
	f.OGRN, _ = firstAttr(start, ogrnAttrs...)
	f.INN, _ = firstAttr(start, innAttrs...)
	f.FullName, _ = firstAttr(start, fullNameAttrs...)
	share, err := consumeShare(dec, start)
	if err != nil {
		return nil, err
	}
	f.ShareInfo = share
	return f, nil
}

func parseForeignFounder(dec *xml.Decoder, start xml.StartElement) (model.Founder, error) {
	var f model.ForeignLegalEntityFounder
	f.RegistrationCountry, _ = firstAttr(start, countryNameAttrs...)
	f.RegistrationNumber, _ = firstAttr(start, []string{"РегНомер", "RegNomer"}...)
	f.FullName, _ = firstAttr(start, fullNameAttrs...)
	share, err := consumeShare(dec, start)
	if err != nil {
		return nil, err
	}
	f.ShareInfo = share
	return f, nil
}

func parsePublicFounder(dec *xml.Decoder, start xml.StartElement) (model.Founder, error) {
	var f model.PublicEntityFounder
	f.Kind = xmlattr.LocalName(start.Name.Local)
	f.Name, _ = firstAttr(start, fullNameAttrs...)
	share, err := consumeShare(dec, start)
	if err != nil {
		return nil, err
	}
	f.ShareInfo = share
	return f, nil
}

func parseFundFounder(dec *xml.Decoder, start xml.StartElement) (model.Founder, error) {
	var f model.MutualFundFounder
	f.Name, _ = firstAttr(start, fullNameAttrs...)
	f.ManagingCompany, _ = firstAttr(start, []string{"НаимУК", "NaimUK"}...)
	share, err := consumeShare(dec, start)
	if err != nil {
		return nil, err
	}
	f.ShareInfo = share
	return f, nil
}

// parseRegOrg reads <SvRegOrg> and returns its code/name.
func parseRegOrg(dec *xml.Decoder, start xml.StartElement) (code, name string, err error) {
	code, _ = firstAttr(start, regOrgCodeAttrs...)
	name, _ = firstAttr(start, regOrgNameAttrs...)
	return code, name, skipElement(dec)
}

// parseTaxRegistration reads an SvUchetNO/SvRegPF/SvRegFSS block.
func parseTaxRegistration(dec *xml.Decoder, start xml.StartElement) (model.TaxRegistration, error) {
	var reg model.TaxRegistration
	reg.Date, _ = firstAttr(start, taxRegDateAttrs...)
	reg.RegistrationNum, _ = firstAttr(start, taxRegNumAttrs...)

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return reg, types.XMLError(err, "parsing tax registration block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch {
			case xmlattr.TagMatches(t.Name, pensionOrgTags...), xmlattr.TagMatches(t.Name, fssOrgTags...), xmlattr.TagMatches(t.Name, regOrgTags...):
				if v, ok := firstAttr(t, regOrgCodeAttrs...); ok {
					setFirst(&reg.AuthorityCode, v)
				}
				if v, ok := firstAttr(t, regOrgNameAttrs...); ok {
					setFirst(&reg.AuthorityName, v)
				}
				if err := skipElement(dec); err != nil {
					return reg, err
				}
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return reg, nil
			}
			depth--
		}
	}
}

// parseHistoryEntry reads one history row (SvZapis/SvZapEGRUL or
// SvZapEGRIP), with grnAttrs selecting the registry-specific GRN
// attribute aliases.
func parseHistoryEntry(dec *xml.Decoder, start xml.StartElement, grnAttrs []string) (model.HistoryRecord, error) {
	var h model.HistoryRecord
	h.GRN, _ = firstAttr(start, grnAttrs...)
	h.Date, _ = firstAttr(start, historyDateAttrs...)

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return h, types.XMLError(err, "parsing history entry")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch {
			case xmlattr.TagMatches(t.Name, historyReasonTags...):
				h.ReasonCode, _ = firstAttr(t, historyReasonCodeAttrs...)
				h.ReasonDescription, _ = firstAttr(t, historyReasonNameAttrs...)
				if err := skipElement(dec); err != nil {
					return h, err
				}
			case xmlattr.TagMatches(t.Name, historyRegOrgTags...):
				h.AuthorityCode, _ = firstAttr(t, regOrgCodeAttrs...)
				h.AuthorityName, _ = firstAttr(t, regOrgNameAttrs...)
				if err := skipElement(dec); err != nil {
					return h, err
				}
			case xmlattr.TagMatches(t.Name, historyCertTags...):
				h.CertificateSeries, _ = firstAttr(t, certSeriesAttrs...)
				h.CertificateNumber, _ = firstAttr(t, certNumberAttrs...)
				h.CertificateDate, _ = firstAttr(t, certDateAttrs...)
				if err := skipElement(dec); err != nil {
					return h, err
				}
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return h, nil
			}
			depth--
		}
	}
}

// parseContact reads <SvKont>/<SvedKont> for an email address.
func parseContact(dec *xml.Decoder, start xml.StartElement) (string, error) {
	email, _ := firstAttr(start, emailTags...)
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return email, types.XMLError(err, "parsing contact block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if xmlattr.TagMatches(t.Name, emailTags...) {
				if v, ok := firstAttr(t, []string{"E-mail", "Email", "Адрес"}...); ok {
					setFirst(&email, v)
				}
				if err := skipElement(dec); err != nil {
					return email, err
				}
			} else {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return email, nil
			}
			depth--
		}
	}
}
