package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"roster-portal-backend/internal/config"
	"roster-portal-backend/internal/database"
	"roster-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AccountData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	RG        string `yaml:"rg"`
	Birthdate string `yaml:"birthdate,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role,omitempty"`
}

type OrganizationData struct {
	OwnerEmail       string `yaml:"owner_email"`
	OrganizationName string `yaml:"organization_name"`
	CNPJ             string `yaml:"cnpj"`
}

type MemberData struct {
	OrganizationName string `yaml:"organization_name"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	RG               string `yaml:"rg"`
	Birthdate        string `yaml:"birthdate,omitempty"`
	Registration     string `yaml:"registration"`
	Team             string `yaml:"team"`
	Exclusive        string `yaml:"exclusive,omitempty"`
}

type StaffData struct {
	OrganizationName string `yaml:"organization_name"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	RG               string `yaml:"rg"`
	Team             string `yaml:"team"`
	Birthdate        string `yaml:"birthdate,omitempty"`
}

// File structures
type AccountsFile struct {
	Accounts []AccountData `yaml:"accounts"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type RostersFile struct {
	Members    []MemberData `yaml:"members"`
	Gestors    []StaffData  `yaml:"gestors"`
	Assistants []StaffData  `yaml:"assistants"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	accounts, err := loadAccounts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	rosters, err := loadRosters(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rosters: %w", err)
	}

	// Create accounts first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, accountData := range accounts {
		user, created, err := createAccount(db, accountData)
		if err != nil {
			return fmt.Errorf("failed to create account %s: %w", accountData.Email, err)
		}
		userMap[accountData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Accounts: %d created, %d total", userCreated, len(accounts))

	// Create organizations
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.OrganizationName, err)
		}
		orgMap[orgData.OrganizationName] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create roster entries
	memberCreated := 0
	for _, memberData := range rosters.Members {
		created, err := createMember(db, memberData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create member %s %s: %v", memberData.FirstName, memberData.LastName, err)
			continue
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(rosters.Members))

	gestorCreated := 0
	for _, staffData := range rosters.Gestors {
		created, err := createGestor(db, staffData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create gestor %s %s: %v", staffData.FirstName, staffData.LastName, err)
			continue
		}
		if created {
			gestorCreated++
		}
	}
	log.Printf("📋 Gestors: %d created, %d total", gestorCreated, len(rosters.Gestors))

	assistantCreated := 0
	for _, staffData := range rosters.Assistants {
		created, err := createAssistant(db, staffData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create assistant %s %s: %v", staffData.FirstName, staffData.LastName, err)
			continue
		}
		if created {
			assistantCreated++
		}
	}
	log.Printf("📋 Assistants: %d created, %d total", assistantCreated, len(rosters.Assistants))

	return nil
}

func loadAccounts(dataDir string) ([]AccountData, error) {
	var allAccounts []AccountData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "accounts") {
			var file AccountsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAccounts = append(allAccounts, file.Accounts...)
		}
		return nil
	})

	return allAccounts, err
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadRosters(dataDir string) (*RostersFile, error) {
	all := &RostersFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "rosters") {
			var file RostersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all.Members = append(all.Members, file.Members...)
			all.Gestors = append(all.Gestors, file.Gestors...)
			all.Assistants = append(all.Assistants, file.Assistants...)
		}
		return nil
	})

	return all, err
}

func createAccount(db *gorm.DB, accountData AccountData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", accountData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(accountData.Password), 12)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			role := "user"
			if accountData.Role != "" {
				role = accountData.Role
			}

			user = models.User{
				FirstName: accountData.FirstName,
				LastName:  accountData.LastName,
				Email:     accountData.Email,
				RG:        accountData.RG,
				Birthdate: accountData.Birthdate,
				Phone:     accountData.Phone,
				Password:  string(hash),
				Role:      role,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create account: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query account: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createOrganization(db *gorm.DB, orgData OrganizationData, userMap map[string]*models.User) (*models.Organization, bool, error) {
	owner := userMap[orgData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("account %s not found for organization %s", orgData.OwnerEmail, orgData.OrganizationName)
	}

	var org models.Organization
	if err := db.Where("organization_name = ?", orgData.OrganizationName).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				UserID:           owner.ID,
				OrganizationName: orgData.OrganizationName,
				CNPJ:             orgData.CNPJ,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createMember(db *gorm.DB, memberData MemberData, orgMap map[string]*models.Organization) (bool, error) {
	org := orgMap[memberData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", memberData.OrganizationName)
	}

	var member models.Member
	if err := db.Where("rg = ?", memberData.RG).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			exclusive := "Não"
			if memberData.Exclusive != "" {
				exclusive = memberData.Exclusive
			}

			member = models.Member{
				UserID:           org.UserID,
				OrganizationID:   org.ID,
				OrganizationName: org.OrganizationName,
				FirstName:        memberData.FirstName,
				LastName:         memberData.LastName,
				RG:               memberData.RG,
				Birthdate:        memberData.Birthdate,
				Registration:     memberData.Registration,
				Team:             memberData.Team,
				Exclusive:        exclusive,
			}

			if err := db.Create(&member).Error; err != nil {
				return false, fmt.Errorf("failed to create member: %w", err)
			}
			return true, nil // created = true
		} else {
			return false, fmt.Errorf("failed to query member: %w", err)
		}
	}

	return false, nil // created = false (existing)
}

func createGestor(db *gorm.DB, staffData StaffData, orgMap map[string]*models.Organization) (bool, error) {
	org := orgMap[staffData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", staffData.OrganizationName)
	}

	var gestor models.Gestor
	if err := db.Where("rg = ?", staffData.RG).First(&gestor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			gestor = models.Gestor{
				UserID:           org.UserID,
				OrganizationID:   org.ID,
				OrganizationName: org.OrganizationName,
				FirstName:        staffData.FirstName,
				LastName:         staffData.LastName,
				RG:               staffData.RG,
				Team:             staffData.Team,
				Birthdate:        staffData.Birthdate,
			}

			if err := db.Create(&gestor).Error; err != nil {
				return false, fmt.Errorf("failed to create gestor: %w", err)
			}
			return true, nil // created = true
		} else {
			return false, fmt.Errorf("failed to query gestor: %w", err)
		}
	}

	return false, nil // created = false (existing)
}

func createAssistant(db *gorm.DB, staffData StaffData, orgMap map[string]*models.Organization) (bool, error) {
	org := orgMap[staffData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", staffData.OrganizationName)
	}

	var assistant models.Assistant
	if err := db.Where("rg = ?", staffData.RG).First(&assistant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			assistant = models.Assistant{
				UserID:           org.UserID,
				OrganizationID:   org.ID,
				OrganizationName: org.OrganizationName,
				FirstName:        staffData.FirstName,
				LastName:         staffData.LastName,
				RG:               staffData.RG,
				Team:             staffData.Team,
				Birthdate:        staffData.Birthdate,
			}

			if err := db.Create(&assistant).Error; err != nil {
				return false, fmt.Errorf("failed to create assistant: %w", err)
			}
			return true, nil // created = true
		} else {
			return false, fmt.Errorf("failed to query assistant: %w", err)
		}
	}

	return false, nil // created = false (existing)
}
