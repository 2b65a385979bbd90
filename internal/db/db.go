package db

import (
	"log"
	"time"

	"github.com/VenturaVini/barbearia/internal/config"
	"github.com/VenturaVini/barbearia/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.UnavailableDay{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	ensureNoOverlapConstraint(db)

	return db
}

// Backstop de armazenamento contra double-booking: mesmo que duas criações
// concorrentes leiam o mesmo estado, o Postgres rejeita a segunda linha
// com intervalo sobreposto para o mesmo barbeiro.
func ensureNoOverlapConstraint(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	var count int64
	db.Raw(
		`SELECT count(*) FROM pg_constraint WHERE conname = 'appointments_no_overlap'`,
	).Scan(&count)

	if count == 0 {
		if err := db.Exec(`
            ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                barber_id WITH =,
                tsrange(start_time, end_time) WITH &&
            )
            WHERE (status IN ('PENDING', 'CONFIRMED'))
        `).Error; err != nil {
			log.Fatalf("failed to create overlap constraint: %v", err)
		}
	}
}
