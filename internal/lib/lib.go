// Package lib holds the clients of the external collaborators that do
// not fit strictly into other layers.
//
// Each subpackage wraps one concern: geocoding, translation, email,
// SMS, QR rendering, spreadsheets, media downloads and the shared
// outbound HTTP client.
package lib
