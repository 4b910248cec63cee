package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-backoffice/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_backoffice")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.Admin{},
		&models.RoomType{},
		&models.Room{},
		&models.RoomStatusLog{},
		&models.Booking{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InventoryItem{},
		&models.InventoryCheck{},
		&models.InventoryCheckItem{},
		&models.CodeCounter{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func SeedDatabase() {
	// ---------------- Hotel ----------------
	var hotel models.Hotel
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotel = models.Hotel{
			Name:    "Main Hotel",
			Address: "1 Hotel Road",
			Phone:   "000-000-0000",
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel: %v", err)
			return
		}
		log.Println("Hotel seeded")
	} else {
		DB.First(&hotel)
	}

	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hotel.local",
				Password: string(hash),
				HotelID:  hotel.ID,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{HotelID: hotel.ID, TypeName: "Standard", Description: "Standard Room", MaxGuests: 2, PricePerHour: 80000, PricePerDay: 400000, PriceOvernight: 250000},
			{HotelID: hotel.ID, TypeName: "Superior", Description: "Superior Room", MaxGuests: 3, PricePerHour: 100000, PricePerDay: 500000, PriceOvernight: 320000},
			{HotelID: hotel.ID, TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4, PricePerHour: 130000, PricePerDay: 650000, PriceOvernight: 420000},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")

			// ---------------- Rooms ----------------
			var roomCount int64
			DB.Model(&models.Room{}).Count(&roomCount)
			if roomCount == 0 {
				rooms := []models.Room{
					{HotelID: hotel.ID, RoomNumber: "101", RoomTypeID: &roomTypes[0].ID, Status: models.RoomAvailable, Floor: "1"},
					{HotelID: hotel.ID, RoomNumber: "102", RoomTypeID: &roomTypes[0].ID, Status: models.RoomAvailable, Floor: "1"},
					{HotelID: hotel.ID, RoomNumber: "201", RoomTypeID: &roomTypes[1].ID, Status: models.RoomAvailable, Floor: "2"},
					{HotelID: hotel.ID, RoomNumber: "301", RoomTypeID: &roomTypes[2].ID, Status: models.RoomAvailable, Floor: "3"},
				}
				if err := DB.Create(&rooms).Error; err != nil {
					log.Printf("warning: failed to seed rooms: %v", err)
				} else {
					log.Println("Rooms seeded")
				}
			}
		}
	}

	// ---------------- Inventory ----------------
	var itemCount int64
	DB.Model(&models.InventoryItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.InventoryItem{
			{HotelID: hotel.ID, Code: "SP00001", Name: "Bottled Water", Unit: "bottle", SellingPrice: 10000, CostPrice: 5000, Stock: 100},
			{HotelID: hotel.ID, Code: "SP00002", Name: "Soft Drink", Unit: "can", SellingPrice: 15000, CostPrice: 9000, Stock: 60},
			{HotelID: hotel.ID, Code: "SP00003", Name: "Instant Noodles", Unit: "cup", SellingPrice: 20000, CostPrice: 12000, Stock: 40},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed inventory items: %v", err)
		} else {
			log.Println("Inventory items seeded")
		}

		counter := models.CodeCounter{HotelID: hotel.ID, Prefix: "SP", Seq: 3}
		if err := DB.Create(&counter).Error; err != nil {
			log.Printf("warning: failed to seed inventory code counter: %v", err)
		}
	}
}
