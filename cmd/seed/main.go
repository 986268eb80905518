package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"papermark-backend/internal/config"
	"papermark-backend/internal/database"
	"papermark-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Fixture structures, keyed by natural identifiers so files stay readable
type UserData struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type TeamData struct {
	Name    string       `yaml:"name"`
	Plan    string       `yaml:"plan"`
	Members []MemberData `yaml:"members"`
}

type DocumentData struct {
	Name        string     `yaml:"name"`
	Team        string     `yaml:"team"`
	Owner       string     `yaml:"owner"`
	File        string     `yaml:"file"`
	Type        string     `yaml:"type"`
	ContentType string     `yaml:"content_type"`
	StorageType string     `yaml:"storage_type"`
	NumPages    int        `yaml:"num_pages"`
	Links       []LinkData `yaml:"links,omitempty"`
}

type LinkData struct {
	Name           string   `yaml:"name"`
	Slug           string   `yaml:"slug,omitempty"`
	Password       string   `yaml:"password,omitempty"`
	EmailProtected *bool    `yaml:"email_protected,omitempty"`
	AllowDownload  bool     `yaml:"allow_download"`
	AllowList      []string `yaml:"allow_list,omitempty"`
}

// FixtureFile is the shape of every YAML file under the data directory
type FixtureFile struct {
	Users     []UserData     `yaml:"users"`
	Teams     []TeamData     `yaml:"teams"`
	Documents []DocumentData `yaml:"documents"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory containing YAML fixtures")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fixtures, err := loadFixtures(*dataDir)
	if err != nil {
		log.Fatalf("Failed to read fixtures: %v", err)
	}

	if err := seed(db, fixtures); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Fixtures loaded")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadFixtures merges every .yaml file below dataDir
func loadFixtures(dataDir string) (*FixtureFile, error) {
	merged := &FixtureFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file FixtureFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Users = append(merged.Users, file.Users...)
		merged.Teams = append(merged.Teams, file.Teams...)
		merged.Documents = append(merged.Documents, file.Documents...)
		return nil
	})

	return merged, err
}

func seed(db *gorm.DB, fixtures *FixtureFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		users := make(map[string]*models.User)
		usersCreated := 0
		for _, userData := range fixtures.Users {
			user, created, err := createUser(tx, userData)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			users[user.Email] = user
			if created {
				usersCreated++
			}
		}
		log.Printf("Users: %d created, %d total", usersCreated, len(fixtures.Users))

		teams := make(map[string]*models.Team)
		teamsCreated := 0
		for _, teamData := range fixtures.Teams {
			team, created, err := createTeam(tx, teamData, users)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
			}
			teams[team.Name] = team
			if created {
				teamsCreated++
			}
		}
		log.Printf("Teams: %d created, %d total", teamsCreated, len(fixtures.Teams))

		documentsCreated, linksCreated := 0, 0
		for _, documentData := range fixtures.Documents {
			document, created, err := createDocument(tx, documentData, teams, users)
			if err != nil {
				log.Printf("Warning: failed to create document %s: %v", documentData.Name, err)
				continue
			}
			if created {
				documentsCreated++
			}
			for _, linkData := range documentData.Links {
				created, err := createLink(tx, document, linkData)
				if err != nil {
					return fmt.Errorf("failed to create link %s: %w", linkData.Name, err)
				}
				if created {
					linksCreated++
				}
			}
		}
		log.Printf("Documents: %d created, %d total", documentsCreated, len(fixtures.Documents))
		log.Printf("Links: %d created", linksCreated)
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	now := time.Now()
	user = models.User{Email: email, Name: userData.Name, EmailVerifiedAt: &now}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, teamData TeamData, users map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	created := false
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		plan := models.Plan(teamData.Plan)
		if plan == "" {
			plan = models.PlanFree
		}
		if !plan.IsValid() {
			return nil, false, fmt.Errorf("unknown plan %q", teamData.Plan)
		}
		team = models.Team{Name: teamData.Name, Plan: plan}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, err
		}
		created = true
	default:
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	for _, memberData := range teamData.Members {
		user, ok := users[strings.ToLower(memberData.Email)]
		if !ok {
			return nil, false, fmt.Errorf("member %s is not listed under users", memberData.Email)
		}
		role := models.Role(strings.ToUpper(memberData.Role))
		if role == "" {
			role = models.RoleMember
		}
		if !role.IsValid() {
			return nil, false, fmt.Errorf("unknown role %q", memberData.Role)
		}
		membership := models.UserTeam{UserID: user.ID, TeamID: team.ID, Role: role, Status: models.MemberStatusActive}
		if err := db.Where(models.UserTeam{UserID: user.ID, TeamID: team.ID}).FirstOrCreate(&membership).Error; err != nil {
			return nil, false, err
		}
	}
	return &team, created, nil
}

func createDocument(db *gorm.DB, documentData DocumentData, teams map[string]*models.Team, users map[string]*models.User) (*models.Document, bool, error) {
	team, ok := teams[documentData.Team]
	if !ok {
		return nil, false, fmt.Errorf("team %s is not listed under teams", documentData.Team)
	}

	var document models.Document
	err := db.Where("team_id = ? AND name = ?", team.ID, documentData.Name).First(&document).Error
	if err == nil {
		return &document, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query document: %w", err)
	}

	storageType := models.StorageType(documentData.StorageType)
	if storageType == "" {
		storageType = models.StorageTypeS3
	}
	docType := models.DocumentType(documentData.Type)
	if docType == "" {
		docType = models.DocumentTypePDF
	}
	document = models.Document{
		TeamID:      team.ID,
		Name:        documentData.Name,
		Type:        docType,
		ContentType: documentData.ContentType,
		StorageType: storageType,
		File:        documentData.File,
		NumPages:    documentData.NumPages,
	}
	if owner, ok := users[strings.ToLower(documentData.Owner)]; ok {
		document.OwnerID = &owner.ID
	}

	if err := db.Create(&document).Error; err != nil {
		return nil, false, err
	}
	version := models.DocumentVersion{
		DocumentID:    document.ID,
		VersionNumber: 1,
		File:          document.File,
		Type:          document.Type,
		ContentType:   document.ContentType,
		StorageType:   document.StorageType,
		NumPages:      document.NumPages,
		IsPrimary:     true,
	}
	if err := db.Create(&version).Error; err != nil {
		return nil, false, err
	}
	return &document, true, nil
}

func createLink(db *gorm.DB, document *models.Document, linkData LinkData) (bool, error) {
	var count int64
	if err := db.Model(&models.Link{}).Where("document_id = ? AND name = ?", document.ID, linkData.Name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	link := models.Link{
		TeamID:             document.TeamID,
		LinkType:           models.LinkTypeDocument,
		DocumentID:         &document.ID,
		Name:               linkData.Name,
		EmailProtected:     linkData.EmailProtected == nil || *linkData.EmailProtected,
		AllowDownload:      linkData.AllowDownload,
		EnableNotification: true,
		AllowList:          linkData.AllowList,
		DenyList:           []string{},
	}
	if link.AllowList == nil {
		link.AllowList = []string{}
	}
	if linkData.Slug != "" {
		slug := strings.ToLower(linkData.Slug)
		link.Slug = &slug
	}
	if linkData.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(linkData.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		link.PasswordHash = string(hash)
	}
	return true, db.Create(&link).Error
}
