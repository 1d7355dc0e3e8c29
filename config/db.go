package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// seedCatalog is the fixed room layout. Ids are contiguous per type block
// and never reassigned.
func seedCatalog() []models.Room {
	var rooms []models.Room
	add := func(startID uint, roomType string, price, count int) {
		for i := 0; i < count; i++ {
			rooms = append(rooms, models.Room{
				ID:    startID + uint(i),
				Type:  roomType,
				Price: price,
			})
		}
	}

	add(1, models.RoomTypeStandard, 2000, 5)
	add(6, models.RoomTypeDeluxe, 2500, 5)
	add(11, models.RoomTypePremiumSuite, 3000, 5)
	return rooms
}

// SeedRooms populates the fixed catalog once, detected via "rooms table
// empty". A duplicate-entry error means another instance won the seed race
// and is treated as already-seeded.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding rooms...")
	rooms := seedCatalog()
	if err := db.Create(&rooms).Error; err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			log.Println("Rooms already seeded by another instance")
			return nil
		}
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	log.Println("Rooms seeded successfully")
	return nil
}

func gormLogLevel() logger.LogLevel {
	if strings.EqualFold(envOrDefault("DB_LOG", ""), "info") {
		return logger.Info
	}
	return logger.Warn
}

// ConnectDatabase opens the MySQL connection, migrates the two tables and
// seeds the room catalog. The returned handle is the single store object
// everything else receives; there is no package-level DB.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormLogLevel(),
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
	); err != nil {
		return nil, err
	}

	if err := SeedRooms(db); err != nil {
		return nil, err
	}

	return db, nil
}
