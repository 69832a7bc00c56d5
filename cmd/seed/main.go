// Command seed creates an organization and its owner account. Tenants are
// provisioned out-of-band — there is no self-registration endpoint.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/barberflow/barberflow-api/internal/auth"
	"github.com/barberflow/barberflow-api/internal/config"
	dbpkg "github.com/barberflow/barberflow-api/internal/db"
	"github.com/barberflow/barberflow-api/internal/models"
)

func main() {
	orgName := flag.String("org", "", "organization name")
	orgSlug := flag.String("slug", "", "organization slug (public lookup key)")
	ownerName := flag.String("owner", "", "owner full name")
	email := flag.String("email", "", "owner email")
	password := flag.String("password", "", "owner password")
	flag.Parse()

	if *orgName == "" || *orgSlug == "" || *ownerName == "" || *email == "" || *password == "" {
		log.Fatal("usage: seed -org NAME -slug SLUG -owner NAME -email EMAIL -password PASSWORD")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	slug := strings.ToLower(strings.TrimSpace(*orgSlug))

	var count int64
	db.Model(&models.Organization{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		log.Fatalf("slug already exists: %s", slug)
	}

	org := models.Organization{
		Name:   *orgName,
		Slug:   slug,
		Status: models.OrgStatusActive,
	}
	if err := db.Create(&org).Error; err != nil {
		log.Fatalf("failed to create organization: %v", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	owner := models.User{
		OrganizationID: org.ID,
		FullName:       *ownerName,
		Email:          strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash:   hashed,
		Role:           "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatalf("failed to create owner: %v", err)
	}

	log.Printf("seeded organization %q (id=%d) with owner %s", org.Name, org.ID, owner.Email)
}
