package seeder

import (
	"fmt"

	"openride/internal/models"
)

// DemoPassword is the plain password shared by every demo account.
const DemoPassword = "demo123"

// TestPrice is the standard Interswitch test amount used for every demo route.
const TestPrice = 566.00

type userSeed struct {
	Email string
	Name  string
	Phone string
	Role  models.UserRole
}

type vehicleSeed struct {
	Driver   int // position among the seeded drivers
	Make     string
	Model    string
	Year     int
	Color    string
	Plate    string
	Capacity int
}

type routeSeed struct {
	Driver    int
	Vehicle   int
	Start     string
	End       string
	Departure string
	Available int
	Total     int
	Stops     []string
}

var demoUsers = []userSeed{
	// Riders
	{Email: "rider@demo.com", Name: "Demo Rider", Phone: "08012345678", Role: models.RoleRider},
	{Email: "john@test.com", Name: "John Doe", Phone: "08023456789", Role: models.RoleRider},
	{Email: "sarah@test.com", Name: "Sarah Williams", Phone: "08034567890", Role: models.RoleRider},

	// Drivers
	{Email: "driver@demo.com", Name: "Demo Driver", Phone: "08087654321", Role: models.RoleDriver},
	{Email: "mike@driver.com", Name: "Mike Johnson", Phone: "08076543210", Role: models.RoleDriver},
	{Email: "ada@driver.com", Name: "Ada Okafor", Phone: "08065432109", Role: models.RoleDriver},
}

var demoVehicles = []vehicleSeed{
	{Driver: 0, Make: "Toyota", Model: "Hiace", Year: 2020, Color: "White", Plate: "LAG-123-XY", Capacity: 14},
	{Driver: 1, Make: "Toyota", Model: "Corolla", Year: 2019, Color: "Silver", Plate: "ABJ-456-ZZ", Capacity: 4},
	{Driver: 2, Make: "Honda", Model: "Civic", Year: 2021, Color: "Black", Plate: "LAG-789-AB", Capacity: 4},
}

var demoRoutes = []routeSeed{
	// Lagos: Demo Driver
	{Driver: 0, Vehicle: 0, Start: "Ikeja", End: "Victoria Island", Departure: "08:00", Available: 12, Total: 14,
		Stops: []string{"Ikeja", "Oshodi", "Obalende", "Victoria Island"}},
	{Driver: 0, Vehicle: 0, Start: "Lekki", End: "Marina", Departure: "09:00", Available: 10, Total: 14,
		Stops: []string{"Lekki", "Ajah", "Ikoyi", "Marina"}},
	{Driver: 0, Vehicle: 0, Start: "Surulere", End: "Yaba", Departure: "07:30", Available: 11, Total: 14,
		Stops: []string{"Surulere", "Yaba"}},
	{Driver: 0, Vehicle: 0, Start: "Ajah", End: "Oshodi", Departure: "10:00", Available: 13, Total: 14,
		Stops: []string{"Ajah", "Lekki", "Obalende", "Oshodi"}},

	// Abuja: Mike Johnson
	{Driver: 1, Vehicle: 1, Start: "Abuja", End: "Kubwa", Departure: "08:00", Available: 3, Total: 4,
		Stops: []string{"Abuja", "Kubwa"}},
	{Driver: 1, Vehicle: 1, Start: "Wuse", End: "Gwarinpa", Departure: "09:00", Available: 4, Total: 4,
		Stops: []string{"Wuse", "Gwarinpa"}},
	{Driver: 1, Vehicle: 1, Start: "Maitama", End: "Garki", Departure: "10:30", Available: 3, Total: 4,
		Stops: []string{"Maitama", "Garki"}},

	// Port Harcourt: Ada Okafor
	{Driver: 2, Vehicle: 2, Start: "Port Harcourt", End: "Trans-Amadi", Departure: "08:00", Available: 4, Total: 4,
		Stops: []string{"Port Harcourt", "Trans-Amadi"}},
	{Driver: 2, Vehicle: 2, Start: "Rumuola", End: "Eleme", Departure: "09:30", Available: 3, Total: 4,
		Stops: []string{"Rumuola", "Eleme"}},

	// Other major cities
	{Driver: 0, Vehicle: 0, Start: "Kano", End: "Sabon Gari", Departure: "11:00", Available: 12, Total: 14,
		Stops: []string{"Kano", "Sabon Gari"}},
	{Driver: 1, Vehicle: 1, Start: "Ibadan", End: "Bodija", Departure: "12:00", Available: 4, Total: 4,
		Stops: []string{"Ibadan", "Bodija"}},
	{Driver: 2, Vehicle: 2, Start: "Benin City", End: "Ikpoba Hill", Departure: "13:00", Available: 3, Total: 4,
		Stops: []string{"Benin City", "Ikpoba Hill"}},
	{Driver: 0, Vehicle: 0, Start: "Kaduna", End: "Barnawa", Departure: "14:00", Available: 10, Total: 14,
		Stops: []string{"Kaduna", "Barnawa"}},
	{Driver: 1, Vehicle: 1, Start: "Enugu", End: "New Haven", Departure: "15:00", Available: 4, Total: 4,
		Stops: []string{"Enugu", "New Haven"}},
	{Driver: 2, Vehicle: 2, Start: "Eleme", End: "Port Harcourt", Departure: "16:00", Available: 4, Total: 4,
		Stops: []string{"Eleme", "Rumuola", "Port Harcourt"}},
}

// Validate checks the demo dataset before anything is written.
func Validate() error {
	return validate(demoUsers, demoVehicles, demoRoutes)
}

func validate(users []userSeed, vehicles []vehicleSeed, routes []routeSeed) error {
	drivers := 0
	emails := make(map[string]bool, len(users))
	for _, u := range users {
		if emails[u.Email] {
			return fmt.Errorf("duplicate email %s", u.Email)
		}
		emails[u.Email] = true
		switch u.Role {
		case models.RoleDriver:
			drivers++
		case models.RoleRider:
		default:
			return fmt.Errorf("user %s: unknown role %q", u.Email, u.Role)
		}
	}

	plates := make(map[string]bool, len(vehicles))
	for i, v := range vehicles {
		if v.Driver < 0 || v.Driver >= drivers {
			return fmt.Errorf("vehicle %d: driver index %d out of range", i, v.Driver)
		}
		if plates[v.Plate] {
			return fmt.Errorf("vehicle %d: duplicate plate %s", i, v.Plate)
		}
		plates[v.Plate] = true
	}

	for i, r := range routes {
		if r.Vehicle < 0 || r.Vehicle >= len(vehicles) {
			return fmt.Errorf("route %d: vehicle index %d out of range", i, r.Vehicle)
		}
		if vehicles[r.Vehicle].Driver != r.Driver {
			return fmt.Errorf("route %d: vehicle %s is not driven by driver %d", i, vehicles[r.Vehicle].Plate, r.Driver)
		}
		if r.Available < 0 || r.Available > r.Total {
			return fmt.Errorf("route %d: available seats %d exceed total %d", i, r.Available, r.Total)
		}
		if r.Total > vehicles[r.Vehicle].Capacity {
			return fmt.Errorf("route %d: total seats %d exceed vehicle capacity %d", i, r.Total, vehicles[r.Vehicle].Capacity)
		}
		if len(r.Stops) < 2 || r.Stops[0] != r.Start || r.Stops[len(r.Stops)-1] != r.End {
			return fmt.Errorf("route %d: stops must run from %s to %s", i, r.Start, r.End)
		}
	}
	return nil
}
