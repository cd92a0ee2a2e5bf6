package dto

// ContactRequest carries the four required textual fields of a create or
// edit submission. Coordinates are never accepted from clients; they only
// enter the system through geocoding.
type ContactRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	GSM     string `json:"gsm"`
	Address string `json:"address"`
}

type ContactResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	GSM     string   `json:"gsm"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}
