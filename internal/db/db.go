package db

import (
	"fmt"
	"log"
	"prodiny/internal/config"
	"prodiny/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to the configured database, runs migrations and seeds
// reference data.
func Init(cfg *config.Config) {
	var dialector gorm.Dialector
	switch cfg.DBType {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		log.Fatalf("Unsupported database type: %s", cfg.DBType)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	SeedSubgroups(DB)
}

// Migrate runs AutoMigrate for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.College{},
		&models.Subgroup{},
		&models.SubgroupMember{},
		&models.Post{},
		&models.Comment{},
		&models.PostVote{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Message{},
	)
}

// SeedSubgroups creates the starter interest communities on an empty
// database. Posts need at least one subgroup to be taggable.
func SeedSubgroups(db *gorm.DB) {
	var count int64
	db.Model(&models.Subgroup{}).Count(&count)
	if count > 0 {
		log.Println("Subgroups already seeded, skipping")
		return
	}

	subgroups := []models.Subgroup{
		{Name: "AI & Machine Learning", Description: "Artificial Intelligence, ML, Deep Learning discussions", Icon: "🤖"},
		{Name: "Web Development", Description: "Frontend, Backend, Full-stack development", Icon: "💻"},
		{Name: "Mobile Development", Description: "iOS, Android, React Native, Flutter", Icon: "📱"},
		{Name: "Data Science", Description: "Data Analysis, Visualization, Statistics", Icon: "📊"},
		{Name: "Cybersecurity", Description: "Security, Ethical Hacking, Privacy", Icon: "🔒"},
		{Name: "Game Development", Description: "Unity, Unreal, Indie Games", Icon: "🎮"},
		{Name: "DevOps", Description: "CI/CD, Cloud, Infrastructure", Icon: "⚙️"},
		{Name: "UI/UX Design", Description: "User Interface, User Experience Design", Icon: "🎨"},
		{Name: "Blockchain", Description: "Cryptocurrency, Smart Contracts, DeFi", Icon: "⛓️"},
		{Name: "Robotics", Description: "Hardware, Automation, IoT", Icon: "🦾"},
		{Name: "Competitive Programming", Description: "Algorithms, Data Structures, Contests", Icon: "🏆"},
		{Name: "Open Source", Description: "Contributing to open source projects", Icon: "🌟"},
	}

	for _, sg := range subgroups {
		if err := db.Create(&sg).Error; err != nil {
			log.Printf("Failed to create subgroup %s: %v", sg.Name, err)
		}
	}
	log.Println("Initial subgroups created successfully")
}

// Close releases the underlying connection pool.
func Close() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
