package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenkraft/hr-management/internal/database"
	"github.com/lumenkraft/hr-management/internal/employee"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an admin employee",
	Long:  `Seed the database with an initial admin employee for development and first login.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		conn, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer conn.Close()
		db := conn.Gorm()

		adminEmail := "admin@lumenkraft.com"
		adminFirstName := "Admin"

		var exists int
		if err := db.Raw("SELECT 1 FROM employees WHERE email = ?", adminEmail).Row().Scan(&exists); err == nil {
			fmt.Println("admin employee already exists:", adminEmail)
			return
		}

		var seq int64
		if err := db.Raw("SELECT nextval('employee_number_seq')").Row().Scan(&seq); err != nil {
			log.Fatalf("failed to read badge sequence: %v", err)
		}
		badgeID := employee.FormatBadgeID(cfg.Employee.BadgePrefix, cfg.Employee.BadgePad, seq)

		tempPassword, err := employee.GenerateTempPassword(employee.DefaultTempPasswordLength)
		if err != nil {
			log.Fatalf("failed to generate temp password: %v", err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash temp password: %v", err)
		}

		err = db.Exec(
			`INSERT INTO employees (id, badge_id, first_name, email, temp_password_hash, changed_temp_password, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, false, now(), now())`,
			uuid.NewString(), badgeID, adminFirstName, adminEmail, string(hash),
		).Error
		if err != nil {
			log.Fatalf("failed to insert admin employee: %v", err)
		}

		fmt.Println("Seeded admin employee:", adminEmail, "badge:", badgeID)
		fmt.Println("Temporary password (login and change it):", tempPassword)
	},
}
