package dto

import "encoding/xml"

// AadhaarQRData is the XML payload of the Aadhaar print-letter QR code
// (UIDAI format). When an uploaded document carries one, its name and state
// attributes are exact and take precedence over regex guesses from OCR text.
type AadhaarQRData struct {
	XMLName  xml.Name `xml:"PrintLetterBarcodeData"`
	UID      string   `xml:"uid,attr"`
	Name     string   `xml:"name,attr"`
	Gender   string   `xml:"gender,attr"`
	District string   `xml:"dist,attr"`
	State    string   `xml:"state,attr"`
	PinCode  string   `xml:"pc,attr"`
}
