// Package barcode models decoded barcode results and derives a stable
// identity for them.
//
// Decoding itself happens elsewhere. A Barcode only carries what a scanner
// reported: symbology, payload, optional add-on and composite data, and
// where the code was seen in the frame.
package barcode

import (
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// Symbology is a barcode type.
type Symbology int

const (
	SymbologyEAN13UPCA Symbology = iota
	SymbologyUPCE
	SymbologyEAN8
	SymbologyCode39
	SymbologyCode93
	SymbologyCode128
	SymbologyCode11
	SymbologyCode25
	SymbologyCodabar
	SymbologyInterleavedTwoOfFive
	SymbologyMSIPlessey
	SymbologyQR
	SymbologyMicroQR
	SymbologyDataMatrix
	SymbologyAztec
	SymbologyMaxiCode
	SymbologyDotCode
	SymbologyPDF417
	SymbologyMicroPDF417
	SymbologyGS1Databar
	SymbologyGS1DatabarExpanded
	SymbologyGS1DatabarLimited
	SymbologyKIX
	SymbologyRM4SCC
	SymbologyUSPSIntelligentMail
	SymbologyPharmacode
)

var symbologyNames = style.EnumNames[Symbology]{
	Kind: "symbology",
	Names: []string{
		"ean13Upca", "upce", "ean8", "code39", "code93", "code128", "code11",
		"code25", "codabar", "interleavedTwoOfFive", "msiPlessey", "qr",
		"microQr", "dataMatrix", "aztec", "maxiCode", "dotCode", "pdf417",
		"microPdf417", "gs1Databar", "gs1DatabarExpanded", "gs1DatabarLimited",
		"kix", "rm4scc", "uspsIntelligentMail", "pharmacode",
	},
}

// Symbologies returns every known symbology.
func Symbologies() []Symbology { return symbologyNames.Values() }

// ParseSymbology resolves a name such as "code128".
func ParseSymbology(s string) (Symbology, error) { return symbologyNames.Parse(s) }

func (s Symbology) String() string               { return symbologyNames.Name(s) }
func (s Symbology) Valid() bool                  { return symbologyNames.Valid(s) }
func (s Symbology) MarshalText() ([]byte, error) { return symbologyNames.Marshal(s) }

func (s *Symbology) UnmarshalText(text []byte) error {
	v, err := symbologyNames.Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Point is a position in frame coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quadrilateral is the outline of a barcode in a frame.
type Quadrilateral struct {
	TopLeft     Point `json:"topLeft"`
	TopRight    Point `json:"topRight"`
	BottomRight Point `json:"bottomRight"`
	BottomLeft  Point `json:"bottomLeft"`
}

// Barcode is a decoded barcode as reported by a scanner.
type Barcode struct {
	Symbology Symbology `json:"symbology"`
	// Data is the payload as text. It may be empty for binary payloads.
	Data string `json:"data,omitempty"`
	// RawData is the payload as decoded bytes.
	RawData []byte `json:"rawData,omitempty"`
	// AddOnData holds the EAN/UPC add-on, if present.
	AddOnData string `json:"addOnData,omitempty"`
	// CompositeData holds the 2D component of a GS1 composite code.
	CompositeData    string        `json:"compositeData,omitempty"`
	IsGS1DataCarrier bool          `json:"isGs1DataCarrier,omitempty"`
	Location         Quadrilateral `json:"location"`
}

// Payload returns the bytes identifying the code's content: RawData when
// the scanner provided it, Data otherwise.
func (b Barcode) Payload() []byte {
	if len(b.RawData) > 0 {
		return b.RawData
	}
	return []byte(b.Data)
}
