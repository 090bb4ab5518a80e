package citygml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/geoforge/citymodel-go/geometry"
)

// CityGML 2.0 namespace set and schema location, declared once on the
// document root.
const (
	nsCityGML  = "http://www.opengis.net/citygml/2.0"
	nsBuilding = "http://www.opengis.net/citygml/building/2.0"
	nsGML      = "http://www.opengis.net/gml"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	nsXAL      = "urn:oasis:names:tc:ciq:xsdschema:xAL:2.0"

	schemaLocation = nsCityGML + " http://schemas.opengis.net/citygml/2.0/cityGMLBase.xsd " +
		nsBuilding + " http://schemas.opengis.net/citygml/building/2.0/building.xsd"
)

// Whole-extent placeholder envelope corners. The envelope is a constant;
// it is not derived from the emitted geometry.
const (
	envelopeLowerCorner = "-180.0 -90.0 0.0"
	envelopeUpperCorner = "180.0 90.0 100.0"
)

// CityModel is the document root.
type CityModel struct {
	XMLName        xml.Name           `xml:"CityModel"`
	Xmlns          string             `xml:"xmlns,attr"`
	XmlnsCore      string             `xml:"xmlns:core,attr"`
	XmlnsBldg      string             `xml:"xmlns:bldg,attr"`
	XmlnsGML       string             `xml:"xmlns:gml,attr"`
	XmlnsXSI       string             `xml:"xmlns:xsi,attr"`
	XmlnsXAL       string             `xml:"xmlns:xAL,attr"`
	SchemaLocation string             `xml:"xsi:schemaLocation,attr"`
	BoundedBy      boundedBy          `xml:"gml:boundedBy"`
	Members        []CityObjectMember `xml:"cityObjectMember"`
}

type boundedBy struct {
	Envelope envelope `xml:"gml:Envelope"`
}

type envelope struct {
	SrsName     string `xml:"srsName,attr"`
	LowerCorner string `xml:"gml:lowerCorner"`
	UpperCorner string `xml:"gml:upperCorner"`
}

// CityObjectMember wraps one building feature.
type CityObjectMember struct {
	Building Building
}

// Building is one exported building feature. The element name carries the
// configured feature role (bldg:Building by default).
type Building struct {
	XMLName   xml.Name
	ID        string `xml:"gml:id,attr"`
	Fields    []Field
	Address   *Address
	LOD1Solid *SolidProperty `xml:"bldg:lod1Solid,omitempty"`
	LOD2Solid *SolidProperty `xml:"bldg:lod2Solid,omitempty"`
	LOD3Solid *SolidProperty `xml:"bldg:lod3Solid,omitempty"`
	LOD4Solid *SolidProperty `xml:"bldg:lod4Solid,omitempty"`
	Room      *Room
}

// Room is the interior feature nested under the building at LOD4.
type Room struct {
	XMLName   xml.Name      `xml:"bldg:Room"`
	ID        string        `xml:"gml:id,attr"`
	LOD4Solid SolidProperty `xml:"bldg:lod4Solid"`
}

// SolidProperty wraps a solid in its LOD container element.
type SolidProperty struct {
	Solid solid `xml:"gml:Solid"`
}

type solid struct {
	ID       string        `xml:"gml:id,attr"`
	Exterior exteriorShell `xml:"gml:exterior"`
}

type exteriorShell struct {
	CompositeSurface compositeSurface `xml:"gml:CompositeSurface"`
}

type compositeSurface struct {
	Members []surfaceMember `xml:"gml:surfaceMember"`
}

type surfaceMember struct {
	Polygon gmlPolygon `xml:"gml:Polygon"`
}

type gmlPolygon struct {
	ID       string          `xml:"gml:id,attr"`
	Exterior polygonExterior `xml:"gml:exterior"`
}

type polygonExterior struct {
	Ring linearRing `xml:"gml:LinearRing"`
}

type linearRing struct {
	PosList string `xml:"gml:posList"`
}

// NewCityModel creates the document root with the fixed namespace set and
// the whole-extent envelope, using the EPSG code as the srsName.
func NewCityModel(epsg int) *CityModel {
	return &CityModel{
		Xmlns:          nsCityGML,
		XmlnsCore:      nsCityGML,
		XmlnsBldg:      nsBuilding,
		XmlnsGML:       nsGML,
		XmlnsXSI:       nsXSI,
		XmlnsXAL:       nsXAL,
		SchemaLocation: schemaLocation,
		BoundedBy: boundedBy{
			Envelope: envelope{
				SrsName:     fmt.Sprintf("EPSG:%d", epsg),
				LowerCorner: envelopeLowerCorner,
				UpperCorner: envelopeUpperCorner,
			},
		},
	}
}

// AddBuilding attaches one building feature combining the built solid and
// mapped attribute block. Identifiers for the building, its solid, and the
// LOD4 room are freshly generated per call.
func (m *CityModel) AddBuilding(buildingType string, lod int, sg SolidGeometry, fields []Field, addr *Address) {
	b := Building{
		XMLName: xml.Name{Local: "bldg:" + buildingType},
		ID:      newID("Building"),
		Fields:  fields,
		Address: addr,
	}

	sp := &SolidProperty{Solid: solid{
		ID:       newID("Solid"),
		Exterior: exteriorShell{CompositeSurface: compositeSurface{Members: surfaceMembers(sg.Exterior)}},
	}}
	switch lod {
	case 1:
		b.LOD1Solid = sp
	case 3:
		b.LOD3Solid = sp
	case 4:
		b.LOD4Solid = sp
	default:
		b.LOD2Solid = sp
	}

	if sg.Interior != nil {
		b.Room = &Room{
			ID: newID("Room"),
			LOD4Solid: SolidProperty{Solid: solid{
				ID:       newID("Room_Solid"),
				Exterior: exteriorShell{CompositeSurface: compositeSurface{Members: surfaceMembers(sg.Interior.Surfaces)}},
			}},
		}
	}

	m.Members = append(m.Members, CityObjectMember{Building: b})
}

func surfaceMembers(surfaces []NamedPolygon) []surfaceMember {
	members := make([]surfaceMember, len(surfaces))
	for i, s := range surfaces {
		members[i] = surfaceMember{Polygon: gmlPolygon{
			ID:       s.ID,
			Exterior: polygonExterior{Ring: linearRing{PosList: formatRing(s.Ring)}},
		}}
	}
	return members
}

// formatRing renders a ring as space-separated coordinate triples, closing
// it by repeating the first position when the input leaves it open.
func formatRing(ring geometry.Polygon) string {
	if len(ring) == 0 {
		return ""
	}
	closed := ring
	if ring[0] != ring[len(ring)-1] {
		closed = append(append(geometry.Polygon{}, ring...), ring[0])
	}

	var sb strings.Builder
	for i, p := range closed {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for j, c := range p {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
	}
	return sb.String()
}

// newID generates a prefixed random identifier, unique within the document
// produced by one export call.
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
