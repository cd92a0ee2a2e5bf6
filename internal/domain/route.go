package domain

// Represents the drivable path between two contacts as an ordered sequence
// of coordinates. A Route is derived state computed on demand by a routing
// provider; it is never persisted alongside the contact list.
type Route []Coordinates
