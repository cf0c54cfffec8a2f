package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection described by DATABASE_DSN, or by the
// individual database.* keys when no DSN is set.
func Connect() (*gorm.DB, error) {
	dsn := viper.GetString("database.dsn")
	if dsn == "" {
		host := viper.GetString("database.host")
		port := viper.GetString("database.port")
		user := viper.GetString("database.user")
		password := viper.GetString("database.password")
		name := viper.GetString("database.name")

		if host == "" || port == "" || user == "" || name == "" {
			return nil, fmt.Errorf("database configuration is incomplete")
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Seoul",
			host, user, password, name, port)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logrus.Info("database connection established")
	return db, nil
}
