// Package seeder resets the database to a fixed demo snapshot of riders,
// drivers, vehicles and routes.
//
// Each step runs in its own transaction. A failure rolls back the current
// step only, so a failed run can leave the tables cleared but not refilled.
package seeder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openride/internal/auth"
	"openride/internal/models"
)

// Invalidator drops cached data derived from the seeded tables.
type Invalidator interface {
	Invalidate(ctx context.Context) (int, error)
}

type Seeder struct {
	db    *gorm.DB
	out   io.Writer
	now   func() time.Time
	cache Invalidator
}

type Option func(*Seeder)

// WithClock sets the clock used to compute departure dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// WithCache registers a cache to invalidate after a successful run.
func WithCache(c Invalidator) Option {
	return func(s *Seeder) { s.cache = c }
}

// New returns a Seeder writing progress text to out.
func New(db *gorm.DB, out io.Writer, opts ...Option) *Seeder {
	s := &Seeder{db: db, out: out, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.out == nil {
		s.out = io.Discard
	}
	return s
}

// Run clears the tables and inserts the demo users, vehicles and routes.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	if err := Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid demo dataset: %w", err)
	}

	if err := s.Reset(ctx); err != nil {
		return Summary{}, fmt.Errorf("clear database: %w", err)
	}

	users, err := s.CreateUsers(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("create users: %w", err)
	}
	_, drivers := splitByRole(users)

	vehicles, err := s.CreateVehicles(ctx, drivers)
	if err != nil {
		return Summary{}, fmt.Errorf("create vehicles: %w", err)
	}

	routes, err := s.CreateRoutes(ctx, drivers, vehicles)
	if err != nil {
		return Summary{}, fmt.Errorf("create routes: %w", err)
	}

	summary := Summarize(users, vehicles, routes)
	s.invalidateCache(ctx)
	s.printSummary(summary)

	logrus.WithFields(logrus.Fields{
		"users":    summary.Users,
		"vehicles": summary.Vehicles,
		"routes":   summary.Routes,
	}).Info("demo data seeded")
	return summary, nil
}

// Reset hard-deletes routes, vehicles and users, children first.
func (s *Seeder) Reset(ctx context.Context) error {
	s.printf("🗑️  Clearing existing demo data...\n")

	err := s.inTx(ctx, func(tx *gorm.DB) error {
		for _, m := range []interface{}{&models.Route{}, &models.Vehicle{}, &models.User{}} {
			res := tx.Unscoped().Where("1 = 1").Delete(m)
			if res.Error != nil {
				return fmt.Errorf("delete %T: %w", m, res.Error)
			}
			logrus.WithField("model", fmt.Sprintf("%T", m)).Debugf("deleted %d rows", res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.printf("✅ Database cleared\n")
	return nil
}

// CreateUsers inserts the demo riders and drivers with the shared demo password.
func (s *Seeder) CreateUsers(ctx context.Context) ([]models.User, error) {
	s.printf("\n👥 Creating test users...\n")

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	users := make([]models.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		users = append(users, models.User{
			Email:    u.Email,
			Name:     u.Name,
			Phone:    u.Phone,
			Password: hash,
			Role:     u.Role,
		})
	}

	if err := s.inTx(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&users).Error
	}); err != nil {
		return nil, err
	}

	s.printf("✅ Created %d test users:\n", len(users))
	for _, group := range []struct {
		title string
		role  models.UserRole
	}{
		{"RIDERS", models.RoleRider},
		{"DRIVERS", models.RoleDriver},
	} {
		s.printf("\n   %s (Login with these):\n", group.title)
		for _, u := range users {
			if u.Role == group.role {
				s.printf("   📧 %-15s | Password: %s\n", u.Email, DemoPassword)
			}
		}
	}
	return users, nil
}

// CreateVehicles inserts one vehicle per driver. Drivers must already be persisted.
func (s *Seeder) CreateVehicles(ctx context.Context, drivers []models.User) ([]models.Vehicle, error) {
	s.printf("\n🚗 Creating test vehicles...\n")

	vehicles := make([]models.Vehicle, 0, len(demoVehicles))
	for i, v := range demoVehicles {
		if v.Driver >= len(drivers) {
			return nil, fmt.Errorf("vehicle %s: expected driver #%d, have %d drivers", v.Plate, v.Driver+1, len(drivers))
		}
		driver := drivers[v.Driver]
		if driver.ID == 0 {
			return nil, fmt.Errorf("vehicle %d: driver %s has not been persisted", i, driver.Email)
		}
		if !driver.IsDriver() {
			return nil, fmt.Errorf("vehicle %d: %s is not a driver", i, driver.Email)
		}
		vehicles = append(vehicles, models.Vehicle{
			DriverID:     driver.ID,
			Make:         v.Make,
			VehicleModel: v.Model,
			Year:         v.Year,
			Color:        v.Color,
			PlateNumber:  v.Plate,
			Capacity:     v.Capacity,
		})
	}

	if err := s.inTx(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&vehicles).Error
	}); err != nil {
		return nil, err
	}

	s.printf("✅ Created %d vehicles\n", len(vehicles))
	return vehicles, nil
}

// CreateRoutes inserts the demo routes, all departing tomorrow at TestPrice.
func (s *Seeder) CreateRoutes(ctx context.Context, drivers []models.User, vehicles []models.Vehicle) ([]models.Route, error) {
	s.printf("\n🛣️  Creating test routes...\n")

	y, m, d := s.now().AddDate(0, 0, 1).Date()
	tomorrow := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	routes := make([]models.Route, 0, len(demoRoutes))
	for i, r := range demoRoutes {
		if r.Driver >= len(drivers) || r.Vehicle >= len(vehicles) {
			return nil, fmt.Errorf("route %d (%s → %s): missing driver or vehicle", i, r.Start, r.End)
		}
		driver, vehicle := drivers[r.Driver], vehicles[r.Vehicle]
		if vehicle.ID == 0 || vehicle.DriverID != driver.ID {
			return nil, fmt.Errorf("route %d (%s → %s): vehicle %s does not belong to %s", i, r.Start, r.End, vehicle.PlateNumber, driver.Email)
		}

		routes = append(routes, models.Route{
			DriverID:       driver.ID,
			VehicleID:      vehicle.ID,
			StartLocation:  r.Start,
			EndLocation:    r.End,
			DepartureDate:  tomorrow,
			DepartureTime:  r.Departure,
			PricePerSeat:   TestPrice,
			AvailableSeats: r.Available,
			TotalSeats:     r.Total,
			Status:         models.RouteActive,
			BusStops:       models.StopList(append([]string(nil), r.Stops...)),
		})
	}

	if err := s.inTx(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&routes).Error
	}); err != nil {
		return nil, err
	}

	s.printf("✅ Created %d active routes (All at ₦%.2f for Interswitch test)\n", len(routes), TestPrice)
	return routes, nil
}

// inTx runs fn in a transaction, rolling back if fn fails.
func (s *Seeder) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not start transaction: %w", tx.Error)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logrus.WithError(rbErr).Error("rollback failed")
		}
		return err
	}
	return tx.Commit().Error
}

func (s *Seeder) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	n, err := s.cache.Invalidate(ctx)
	if err != nil {
		logrus.WithError(err).Warn("route cache invalidation failed")
		return
	}
	logrus.Debugf("invalidated %d cached route searches", n)
}

func (s *Seeder) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func splitByRole(users []models.User) (riders, drivers []models.User) {
	for _, u := range users {
		if u.IsDriver() {
			drivers = append(drivers, u)
		} else {
			riders = append(riders, u)
		}
	}
	return riders, drivers
}
