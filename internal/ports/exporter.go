package ports

import "contact-map-service/internal/domain"

// Contract for serializing the contact list into a downloadable workbook.
type Exporter interface {
	// Export produces the encoded file contents for the given list,
	// including rows for contacts that have no coordinates yet.
	Export(contacts []domain.Contact) ([]byte, error)

	// Filename returns the fixed download filename for exported files.
	Filename() string

	// ContentType returns the MIME type of the exported file.
	ContentType() string
}
