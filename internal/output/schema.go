package output

import "github.com/apache/arrow-go/v18/arrow"

// leFields is the 42-column flat LE schema (spec §4.5). Dates are
// ISO YYYY-MM-DD strings; capital amount is float64; founders_count is
// int32; additional_activities/founders/history are JSON-serialized
// strings so the nested structure survives without a nested Arrow
// schema.
var leFields = []arrow.Field{
	{Name: "ogrn", Type: arrow.BinaryTypes.String},
	{Name: "ogrn_date", Type: arrow.BinaryTypes.String},
	{Name: "inn", Type: arrow.BinaryTypes.String},
	{Name: "kpp", Type: arrow.BinaryTypes.String},
	{Name: "full_name", Type: arrow.BinaryTypes.String},
	{Name: "short_name", Type: arrow.BinaryTypes.String},
	{Name: "brand_name", Type: arrow.BinaryTypes.String},
	{Name: "opf_code", Type: arrow.BinaryTypes.String},
	{Name: "opf_name", Type: arrow.BinaryTypes.String},
	{Name: "status_code", Type: arrow.BinaryTypes.String},
	{Name: "registration_date", Type: arrow.BinaryTypes.String},
	{Name: "termination_date", Type: arrow.BinaryTypes.String},
	{Name: "termination_method", Type: arrow.BinaryTypes.String},
	{Name: "extract_date", Type: arrow.BinaryTypes.String},
	{Name: "postal_code", Type: arrow.BinaryTypes.String},
	{Name: "region_code", Type: arrow.BinaryTypes.String},
	{Name: "region_name", Type: arrow.BinaryTypes.String},
	{Name: "district", Type: arrow.BinaryTypes.String},
	{Name: "city", Type: arrow.BinaryTypes.String},
	{Name: "locality", Type: arrow.BinaryTypes.String},
	{Name: "street", Type: arrow.BinaryTypes.String},
	{Name: "house", Type: arrow.BinaryTypes.String},
	{Name: "building", Type: arrow.BinaryTypes.String},
	{Name: "flat", Type: arrow.BinaryTypes.String},
	{Name: "full_address", Type: arrow.BinaryTypes.String},
	{Name: "fias", Type: arrow.BinaryTypes.String},
	{Name: "kladr", Type: arrow.BinaryTypes.String},
	{Name: "capital_amount", Type: arrow.PrimitiveTypes.Float64},
	{Name: "capital_currency", Type: arrow.BinaryTypes.String},
	{Name: "main_activity_code", Type: arrow.BinaryTypes.String},
	{Name: "main_activity_name", Type: arrow.BinaryTypes.String},
	{Name: "additional_activities", Type: arrow.BinaryTypes.String},
	{Name: "founders_count", Type: arrow.PrimitiveTypes.Int32},
	{Name: "founders", Type: arrow.BinaryTypes.String},
	{Name: "history", Type: arrow.BinaryTypes.String},
	{Name: "head_officer_full_name", Type: arrow.BinaryTypes.String},
	{Name: "registration_authority_code", Type: arrow.BinaryTypes.String},
	{Name: "registration_authority_name", Type: arrow.BinaryTypes.String},
	{Name: "certificate_series", Type: arrow.BinaryTypes.String},
	{Name: "certificate_number", Type: arrow.BinaryTypes.String},
	{Name: "certificate_date", Type: arrow.BinaryTypes.String},
	{Name: "email", Type: arrow.BinaryTypes.String},
}

// spFields is the ~31-column flat SP schema.
var spFields = []arrow.Field{
	{Name: "ogrnip", Type: arrow.BinaryTypes.String},
	{Name: "ogrnip_date", Type: arrow.BinaryTypes.String},
	{Name: "inn", Type: arrow.BinaryTypes.String},
	{Name: "last_name", Type: arrow.BinaryTypes.String},
	{Name: "first_name", Type: arrow.BinaryTypes.String},
	{Name: "middle_name", Type: arrow.BinaryTypes.String},
	{Name: "gender", Type: arrow.BinaryTypes.String},
	{Name: "citizenship_kind", Type: arrow.BinaryTypes.String},
	{Name: "citizenship_oksm", Type: arrow.BinaryTypes.String},
	{Name: "citizenship_country", Type: arrow.BinaryTypes.String},
	{Name: "status_code", Type: arrow.BinaryTypes.String},
	{Name: "termination_date", Type: arrow.BinaryTypes.String},
	{Name: "termination_method", Type: arrow.BinaryTypes.String},
	{Name: "extract_date", Type: arrow.BinaryTypes.String},
	{Name: "postal_code", Type: arrow.BinaryTypes.String},
	{Name: "region_code", Type: arrow.BinaryTypes.String},
	{Name: "region_name", Type: arrow.BinaryTypes.String},
	{Name: "district", Type: arrow.BinaryTypes.String},
	{Name: "city", Type: arrow.BinaryTypes.String},
	{Name: "locality", Type: arrow.BinaryTypes.String},
	{Name: "street", Type: arrow.BinaryTypes.String},
	{Name: "house", Type: arrow.BinaryTypes.String},
	{Name: "flat", Type: arrow.BinaryTypes.String},
	{Name: "full_address", Type: arrow.BinaryTypes.String},
	{Name: "main_activity_code", Type: arrow.BinaryTypes.String},
	{Name: "main_activity_name", Type: arrow.BinaryTypes.String},
	{Name: "additional_activities", Type: arrow.BinaryTypes.String},
	{Name: "registration_authority_code", Type: arrow.BinaryTypes.String},
	{Name: "registration_authority_name", Type: arrow.BinaryTypes.String},
	{Name: "history", Type: arrow.BinaryTypes.String},
	{Name: "email", Type: arrow.BinaryTypes.String},
}

var leSchema = arrow.NewSchema(leFields, nil)
var spSchema = arrow.NewSchema(spFields, nil)
