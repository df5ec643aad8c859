package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"voyago/internal/bookings"
	"voyago/internal/pricing"
	"voyago/internal/rooms"
	"voyago/internal/seats"
	"voyago/internal/shared/config"
	"voyago/internal/shared/database"
	"voyago/internal/users"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Voyago Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"reviews",
		"flight_statuses",
		"price_points",
		"price_histories",
		"rooms",
		"room_type_groups",
		"room_layouts",
		"seats",
		"seat_maps",
		"bookings",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedBookings(userIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	if err := s.SeedSeatMaps(); err != nil {
		return fmt.Errorf("failed to seed seat maps: %w", err)
	}

	if err := s.SeedRoomLayouts(); err != nil {
		return fmt.Errorf("failed to seed room layouts: %w", err)
	}

	if err := s.SeedPriceHistory(); err != nil {
		return fmt.Errorf("failed to seed price history: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 3 users: 1 admin and 2 travelers
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		phone     string
		role      users.Role
	}{
		{"admin", "Ops", "Admin", "admin@voyago.io", "+1-202-555-0100", users.RoleAdmin},
		{"user1", "Asha", "Nair", "asha.nair@example.com", "+91-98200-12345", users.RoleUser},
		{"user2", "Diego", "Marin", "diego.marin@example.com", "+34-600-123-456", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Phone:     userData.phone,
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedBookings creates bookings at varying travel dates so every refund
// tier shows up in manual testing.
func (s *Seeder) SeedBookings(userIDs map[string]uuid.UUID) error {
	fmt.Println("  🧳 Seeding bookings...")

	bookingsData := []struct {
		userKey     string
		bookingType bookings.BookingType
		itemID      string
		itemName    string
		daysFromNow int
		quantity    int
		totalPrice  float64
	}{
		{"user1", bookings.TypeFlight, "FL-BOM-DXB-104", "Mumbai → Dubai", 5, 1, 450.00},
		{"user1", bookings.TypeHotel, "HT-DXB-MARINA-21", "Marina Bay Hotel, Dubai", 5, 2, 680.00},
		{"user1", bookings.TypeFlight, "FL-DXB-BOM-105", "Dubai → Mumbai", 12, 1, 430.00},
		{"user2", bookings.TypeFlight, "FL-MAD-LIS-220", "Madrid → Lisbon", 1, 2, 180.00},
		{"user2", bookings.TypeHotel, "HT-LIS-ALFAMA-07", "Alfama Guesthouse, Lisbon", 1, 1, 240.00},
		{"user2", bookings.TypeFlight, "FL-LIS-MAD-221", "Lisbon → Madrid", 60, 2, 195.00},
	}

	for _, data := range bookingsData {
		booking := bookings.Booking{
			ID:            uuid.New(),
			UserID:        userIDs[data.userKey],
			Type:          data.bookingType,
			ItemID:        data.itemID,
			ItemName:      data.itemName,
			BookingDate:   time.Now(),
			TravelDate:    time.Now().AddDate(0, 0, data.daysFromNow),
			Quantity:      data.quantity,
			OriginalPrice: data.totalPrice,
			TotalPrice:    data.totalPrice,
			Status:        bookings.StatusConfirmed,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking %s: %w", data.itemID, err)
		}

		fmt.Printf("    ✅ Created booking: %s (%s)\n", booking.ItemName, booking.Type)
	}

	return nil
}

// SeedSeatMaps generates the default cabin for the seeded flights
func (s *Seeder) SeedSeatMaps() error {
	fmt.Println("  💺 Seeding seat maps...")

	flightIDs := []string{"FL-BOM-DXB-104", "FL-DXB-BOM-105", "FL-MAD-LIS-220"}

	for _, flightID := range flightIDs {
		seatMap := seats.GenerateDefaultSeatMap(flightID)
		if err := s.db.PostgreSQL.Create(seatMap).Error; err != nil {
			return fmt.Errorf("failed to create seat map for %s: %w", flightID, err)
		}
		fmt.Printf("    ✅ Created seat map: %s (%d seats)\n", flightID, len(seatMap.Seats))
	}

	return nil
}

// SeedRoomLayouts generates the default inventory for the seeded hotels
func (s *Seeder) SeedRoomLayouts() error {
	fmt.Println("  🏨 Seeding room layouts...")

	hotelIDs := []string{"HT-DXB-MARINA-21", "HT-LIS-ALFAMA-07"}

	for _, hotelID := range hotelIDs {
		layout := rooms.GenerateDefaultLayout(hotelID)
		if err := s.db.PostgreSQL.Create(layout).Error; err != nil {
			return fmt.Errorf("failed to create room layout for %s: %w", hotelID, err)
		}
		fmt.Printf("    ✅ Created room layout: %s (%d room types)\n", hotelID, len(layout.RoomTypes))
	}

	return nil
}

// SeedPriceHistory records two weeks of observed prices per item so the
// insight endpoints return meaningful trends.
func (s *Seeder) SeedPriceHistory() error {
	fmt.Println("  📈 Seeding price history...")

	historiesData := []struct {
		itemID   string
		itemType string
		base     float64
		step     float64
	}{
		{"FL-BOM-DXB-104", "flight", 480.00, -3.5}, // drifting down
		{"FL-MAD-LIS-220", "flight", 150.00, 2.8},  // drifting up
		{"HT-DXB-MARINA-21", "hotel", 340.00, 0.4}, // roughly stable
	}

	for _, data := range historiesData {
		history := pricing.PriceHistory{
			ID:        uuid.New(),
			ItemID:    data.itemID,
			ItemType:  data.itemType,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create price history for %s: %w", data.itemID, err)
		}

		for day := 14; day >= 1; day-- {
			point := pricing.PricePoint{
				ID:         uuid.New(),
				HistoryID:  history.ID,
				Price:      data.base + data.step*float64(14-day),
				RecordedAt: time.Now().AddDate(0, 0, -day),
			}
			if err := s.db.PostgreSQL.Create(&point).Error; err != nil {
				return fmt.Errorf("failed to create price point for %s: %w", data.itemID, err)
			}
		}

		fmt.Printf("    ✅ Created price history: %s (14 points)\n", data.itemID)
	}

	return nil
}
