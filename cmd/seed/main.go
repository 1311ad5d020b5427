package main

import (
	"context"
	"log"
	"time"

	"gymdesk/internal/database"
	"gymdesk/internal/domain"
	"gymdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local SQLite database with one organization, staff accounts,
// plans, members and a week of class templates.
func main() {
	db, err := database.Connect("gymdesk.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM class_generation_log")
	db.Exec("DELETE FROM class_instances")
	db.Exec("DELETE FROM class_templates")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM members")
	db.Exec("DELETE FROM membership_plans")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM organizations")

	ctx := context.Background()

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	planRepo := repository.NewPlanRepository(db)
	templateRepo := repository.NewClassTemplateRepository(db)

	org := domain.Organization{Name: "Ironworks Gym", Timezone: "Europe/Berlin"}
	if err := orgRepo.Create(ctx, &org); err != nil {
		log.Fatal(err)
	}
	log.Printf("Organization created: %s (id=%d)", org.Name, org.ID)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		OrganizationID: org.ID,
		Email:          "admin@ironworks.example",
		PasswordHash:   string(adminHash),
		Name:           "Admin",
		Role:           domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@ironworks.example / admin123")

	trainerHash, _ := bcrypt.GenerateFromPassword([]byte("trainer123"), bcrypt.DefaultCost)
	trainer := domain.User{
		OrganizationID: org.ID,
		Email:          "trainer@ironworks.example",
		PasswordHash:   string(trainerHash),
		Name:           "Sam Trainer",
		Role:           domain.RoleTrainer,
	}
	if err := userRepo.Create(ctx, &trainer); err != nil {
		log.Fatal(err)
	}

	basic := domain.MembershipPlan{
		OrganizationID: org.ID,
		Name:           "Basic",
		Price:          39.90,
		BillingPeriod:  domain.BillingMonthly,
		IsActive:       true,
	}
	if err := planRepo.Create(ctx, &basic); err != nil {
		log.Fatal(err)
	}

	names := []string{"Alex Schmidt", "Maria Lopez", "Jonas Weber"}
	for _, name := range names {
		m := domain.Member{
			OrganizationID: org.ID,
			Name:           name,
			Status:         domain.MemberActive,
			PlanID:         &basic.ID,
			JoinedAt:       time.Now().UTC(),
		}
		if err := memberRepo.Create(ctx, &m); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("%d members created", len(names))

	templates := []domain.ClassTemplate{
		{
			OrganizationID: org.ID,
			Title:          "Morning Yoga",
			Weekday:        1, // Monday
			StartTime:      "07:00",
			EndTime:        "08:00",
			Capacity:       20,
			BookingOpensH:  72,
			BookingClosesM: 30,
			TrainerID:      &trainer.ID,
			Location:       "Studio A",
			IsActive:       true,
		},
		{
			OrganizationID: org.ID,
			Title:          "HIIT",
			Weekday:        3, // Wednesday
			StartTime:      "18:30",
			EndTime:        "19:30",
			Capacity:       16,
			BookingOpensH:  48,
			BookingClosesM: 15,
			TrainerID:      &trainer.ID,
			Location:       "Main Floor",
			IsActive:       true,
		},
		{
			OrganizationID: org.ID,
			Title:          "Spin",
			Weekday:        6, // Saturday
			StartTime:      "10:00",
			EndTime:        "11:00",
			Capacity:       12,
			Location:       "Cycle Room",
			IsActive:       true,
		},
	}
	for i := range templates {
		if err := templateRepo.Create(ctx, &templates[i]); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("%d class templates created", len(templates))

	log.Println("Seed complete")
}
