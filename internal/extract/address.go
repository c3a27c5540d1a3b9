package extract

import (
	"encoding/xml"
	"strings"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
	"github.com/kmakeev/egrul-go/internal/xmlattr"
)

// parseAddress walks an LE/SP address block (<SvAdresUL>/<SvAdres> or
// the SP superset <SvAdrMZh>). start has already been read; parseAddress
// consumes through the matching End. Fields already set on addr are
// not overwritten (first-wins), matching spec §4.3/§9's shared rule.
func parseAddress(dec *xml.Decoder, start xml.StartElement, addr *model.Address) error {
	if v, ok := firstAttr(start, houseAttrs...); ok {
		setFirst(&addr.House, v)
	}
	if v, ok := firstAttr(start, buildingAttrs...); ok {
		setFirst(&addr.Building, v)
	}
	if v, ok := firstAttr(start, flatAttrs...); ok {
		setFirst(&addr.Flat, v)
	}
	if v, ok := firstAttr(start, fiasAttrs...); ok {
		setFirst(&addr.FIAS, v)
	}
	if v, ok := firstAttr(start, kladrAttrs...); ok {
		setFirst(&addr.KLADR, v)
	}
	if v, ok := firstAttr(start, fullAddrAttrs...); ok {
		setFirst(&addr.FullAddress, v)
	}

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return types.XMLError(err, "parsing address block")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch {
			case xmlattr.TagMatches(t.Name, adresRFTags...):
				if v, ok := firstAttr(t, postalCodeAttrs...); ok {
					setFirst(&addr.PostalCode, v)
				}
				if v, ok := firstAttr(t, regionCodeAttrs...); ok {
					setFirst(&addr.RegionCode, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, regionTags...):
				if v, ok := firstAttr(t, streetNameAttrs...); ok {
					setFirst(&addr.RegionName, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, districtTags...):
				if v, ok := firstAttr(t, streetNameAttrs...); ok {
					setFirst(&addr.District, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, cityTags...):
				if v, ok := firstAttr(t, streetNameAttrs...); ok {
					setFirst(&addr.City, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, localityTags...), xmlattr.TagMatches(t.Name, spLocalityTags...):
				if v, ok := firstAttr(t, streetNameAttrs...); ok {
					setFirst(&addr.Locality, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, streetTags...):
				typ, _ := firstAttr(t, streetTypeAttrs...)
				name, _ := firstAttr(t, streetNameAttrs...)
				joined := strings.TrimSpace(strings.TrimSpace(typ) + " " + strings.TrimSpace(name))
				setFirst(&addr.Street, joined)
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, municipalDistrictTags...):
				if v, ok := firstAttr(t, streetNameAttrs...); ok {
					setFirst(&addr.District, v)
				}
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, streetNetTags...):
				typ, _ := firstAttr(t, streetTypeAttrs...)
				name, _ := firstAttr(t, streetNameAttrs...)
				joined := strings.TrimSpace(strings.TrimSpace(typ) + " " + strings.TrimSpace(name))
				setFirst(&addr.Street, joined)
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, buildingTags...):
				// Здание: FIAS-format house number (Тип+Номер), set
				// only if a classic-format "Дом" attribute hasn't
				// already filled addr.House.
				typ, _ := firstAttr(t, streetTypeAttrs...)
				num, _ := firstAttr(t, certNumberAttrs...)
				setFirst(&addr.House, typ+num)
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, roomTags...):
				// ПомещЗдания: FIAS-format room/unit (Тип+Номер),
				// set-if-empty only — no append branch.
				typ, _ := firstAttr(t, streetTypeAttrs...)
				num, _ := firstAttr(t, certNumberAttrs...)
				setFirst(&addr.Flat, typ+num)
				if err := skipElement(dec); err != nil {
					return err
				}
			case xmlattr.TagMatches(t.Name, flatRoomTags...):
				// ПомещКвартиры: FIAS-format flat/office (Тип+Номер),
				// always appended to whatever addr.Flat already holds.
				typ, _ := firstAttr(t, streetTypeAttrs...)
				num, _ := firstAttr(t, certNumberAttrs...)
				room := typ + num
				if room != "" {
					if addr.Flat == "" {
						addr.Flat = room
					} else {
						addr.Flat = addr.Flat + ", " + room
					}
				}
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
