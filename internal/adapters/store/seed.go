package store

import "contact-map-service/internal/domain"

// StoreKey is the single key the contact list blob lives under, in every
// backend.
const StoreKey = "contacts"

// SeedContacts returns the fixed sample list used when a store holds no
// saved value (first run) or an unparseable one. Identifiers are stable so
// demo data survives reseeding.
func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yılmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
		{ID: "2", Name: "Mehmet", Surname: "Demir", GSM: "05443332211", Address: "Kingston Road"},
		{ID: "3", Name: "Ayşe", Surname: "Kara", GSM: "05321234567", Address: "Baker Street"},
		{ID: "4", Name: "Fatma", Surname: "Çelik", GSM: "05061239876", Address: "Oxford Street"},
		{ID: "5", Name: "Ali", Surname: "Şahin", GSM: "05519876543", Address: "Cambridge Avenue"},
	}
}
