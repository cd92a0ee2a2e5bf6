package domain

// Represents a single address-book record.
// A Contact has a unique, stable identifier and four required textual fields.
// Lat and Lon are populated after the address has been successfully geocoded;
// a record carries either both values or neither.
type Contact struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	GSM     string   `json:"gsm"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// ContactFields carries the textual fields of a contact, as submitted on
// create or edit. Coordinates are never part of a submission.
type ContactFields struct {
	Name    string
	Surname string
	GSM     string
	Address string
}

// Coordinated reports whether the contact has resolved coordinates.
func (c Contact) Coordinated() bool { return c.Lat != nil && c.Lon != nil }

// Coordinates returns the contact's resolved position, if any.
func (c Contact) Coordinates() (Coordinates, bool) {
	if !c.Coordinated() {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *c.Lat, Lon: *c.Lon}, true
}
