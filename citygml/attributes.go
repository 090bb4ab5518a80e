package citygml

import (
	"encoding/xml"
	"fmt"
)

// Field is one schema-shaped building sub-element produced by attribute
// mapping, e.g. bldg:function or bldg:measuredHeight.
type Field struct {
	XMLName xml.Name
	UOM     string `xml:"uom,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// Address is the xAL address block nested under bldg:address.
type Address struct {
	XMLName xml.Name   `xml:"bldg:address"`
	Detail  xalAddress `xml:"xAL:Address"`
}

type xalAddress struct {
	Country      *xalCountry      `xml:"xAL:Country,omitempty"`
	Locality     *xalLocality     `xml:"xAL:Locality,omitempty"`
	Thoroughfare *xalThoroughfare `xml:"xAL:Thoroughfare,omitempty"`
	PostCode     *xalPostCode     `xml:"xAL:PostCode,omitempty"`
}

type xalCountry struct {
	Name string `xml:"xAL:CountryName"`
}

type xalLocality struct {
	Type string `xml:"Type,attr"`
	Name string `xml:"xAL:LocalityName"`
}

type xalThoroughfare struct {
	Type   string `xml:"Type,attr"`
	Name   string `xml:"xAL:ThoroughfareName"`
	Number string `xml:"xAL:ThoroughfareNumber,omitempty"`
}

type xalPostCode struct {
	Number string `xml:"xAL:PostCodeNumber"`
}

// simpleFields is the fixed vocabulary of flat attribute keys in emission
// order, with the target element name and unit where the schema fixes one.
var simpleFields = []struct {
	key     string
	element string
	uom     string
}{
	{key: "class", element: "bldg:class"},
	{key: "function", element: "bldg:function"},
	{key: "usage", element: "bldg:usage"},
	{key: "year_of_construction", element: "bldg:yearOfConstruction"},
	{key: "storeys_above_ground", element: "bldg:storeysAboveGround"},
	{key: "storeys_below_ground", element: "bldg:storeysBelowGround"},
	{key: "measured_height", element: "bldg:measuredHeight", uom: "m"},
}

// MapAttributes maps a flat attribute set into schema-shaped sub-elements.
//
// Each recognized key produces exactly one element; absent keys omit the
// element and unrecognized keys are ignored. Values are rendered as text
// with no further coercion. The address block is synthesized only when
// the "address" key is present, with each sub-field independently
// optional.
func MapAttributes(attrs map[string]any) ([]Field, *Address) {
	if len(attrs) == 0 {
		return nil, nil
	}

	var fields []Field
	for _, f := range simpleFields {
		v, ok := attrs[f.key]
		if !ok {
			continue
		}
		fields = append(fields, Field{
			XMLName: xml.Name{Local: f.element},
			UOM:     f.uom,
			Value:   renderText(v),
		})
	}

	return fields, mapAddress(attrs["address"])
}

// mapAddress builds the xAL substructure from the address sub-mapping.
// Locality role is fixed to "Town" and thoroughfare role to "Street".
func mapAddress(raw any) *Address {
	sub, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	addr := &Address{}
	if v, ok := sub["country"]; ok {
		addr.Detail.Country = &xalCountry{Name: renderText(v)}
	}
	if v, ok := sub["city"]; ok {
		addr.Detail.Locality = &xalLocality{Type: "Town", Name: renderText(v)}
	}
	if v, ok := sub["street"]; ok {
		t := &xalThoroughfare{Type: "Street", Name: renderText(v)}
		if n, ok := sub["number"]; ok {
			t.Number = renderText(n)
		}
		addr.Detail.Thoroughfare = t
	}
	if v, ok := sub["postal_code"]; ok {
		addr.Detail.PostCode = &xalPostCode{Number: renderText(v)}
	}
	return addr
}

func renderText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
