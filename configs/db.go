package configs

import (
	"fmt"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// Open returns a gorm handle for the configured driver (sqlite or mysql).
func Open(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(source)
	case "mysql":
		dialector = mysql.Open(source)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func ConnectionDB(cfg *Config) error {
	database, err := Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&entity.Admin{}, &entity.User{}, &entity.Vendor{},
		&entity.MenuItem{}, &entity.Menu{},
		&entity.Order{}, &entity.Payment{},
		&entity.OrderTracking{}, &entity.StatusHistory{}, &entity.RoutePoint{},
		&entity.Subscription{}, &entity.Feedback{},
	}
}

func SetupDatabase() error {
	return Migrate(db)
}

func Migrate(d *gorm.DB) error {
	if err := d.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
