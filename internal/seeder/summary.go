package seeder

import (
	"sort"
	"strings"

	"openride/internal/models"
)

// Summary describes what a seeding run created.
type Summary struct {
	Users     int
	Riders    int
	Drivers   int
	Vehicles  int
	Routes    int
	Locations []string // distinct start/end names, sorted
}

// Summarize counts the seeded rows and collects the locations the routes touch.
func Summarize(users []models.User, vehicles []models.Vehicle, routes []models.Route) Summary {
	riders, drivers := splitByRole(users)

	seen := make(map[string]struct{})
	for _, r := range routes {
		seen[r.StartLocation] = struct{}{}
		seen[r.EndLocation] = struct{}{}
	}
	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	return Summary{
		Users:     len(users),
		Riders:    len(riders),
		Drivers:   len(drivers),
		Vehicles:  len(vehicles),
		Routes:    len(routes),
		Locations: locations,
	}
}

func (s *Seeder) printSummary(sum Summary) {
	preview := sum.Locations
	if len(preview) > 10 {
		preview = preview[:10]
	}
	s.printf("\n   Available routes covering major cities:\n")
	s.printf("   📍 %d locations covered: %s...\n", len(sum.Locations), strings.Join(preview, ", "))

	rule := strings.Repeat("=", 60)
	s.printf("\n%s\n✅ DEMO DATA SEEDED SUCCESSFULLY!\n%s\n", rule, rule)

	s.printf("\n🚀 Quick Start Guide:\n")
	s.printf("\n1. Start the backend:\n   go run ./cmd/server\n")
	s.printf("\n2. Login as RIDER:\n   Email: rider@demo.com\n   Password: %s\n", DemoPassword)
	s.printf("\n3. Login as DRIVER:\n   Email: driver@demo.com\n   Password: %s\n", DemoPassword)
	s.printf("\n4. Test Interswitch Payment:\n")
	s.printf("   Card: 5060990580000217499\n   Expiry: 03/50\n   CVV: 111\n   PIN: 1111\n")
	s.printf("   Amount: ₦%.2f (Standard Interswitch test amount)\n", TestPrice)
	s.printf("\n5. Test Locations (All routes available):\n")
	s.printf("   Lagos: Ikeja, Lekki, Surulere, Ajah, Victoria Island, etc.\n")
	s.printf("   Abuja: Wuse, Kubwa, Maitama, Gwarinpa, Garki\n")
	s.printf("   Other: Port Harcourt, Kano, Ibadan, Benin City, Kaduna, Enugu\n")

	s.printf("\n📊 Database Stats:\n")
	s.printf("   Total Users: %d (%d riders, %d drivers)\n", sum.Users, sum.Riders, sum.Drivers)
	s.printf("   Total Vehicles: %d\n", sum.Vehicles)
	s.printf("   Total Routes: %d\n", sum.Routes)

	s.printf("\n🎯 Demo Ready! No database setup required!\n%s\n", rule)
}
