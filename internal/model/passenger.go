package model

// Passenger holds the identity attributes of a traveller.  The age
// drives the minor/adult classification during group seat
// assignment; the remaining fields are display-only.
//
// Fields:
//  ID      – primary key identifier.
//  DNI     – national identity document number, unique.
//  Name    – full name.
//  Age     – age in years at booking time.
//  Country – country of residence.
type Passenger struct {
	ID      uint64 // passenger.passenger_id
	DNI     string // passenger.dni
	Name    string // passenger.name
	Age     int    // passenger.age
	Country string // passenger.country
}

// IsMinor reports whether the passenger is under 18 and therefore
// must travel accompanied by an adult of the same purchase.
func (p *Passenger) IsMinor() bool { return p.Age < 18 }
