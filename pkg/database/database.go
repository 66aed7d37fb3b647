package database

import (
	"bananalearn_backend/internal/config"
	"bananalearn_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Lets the rule engine detect duplicate unlocks with
		// errors.Is(err, gorm.ErrDuplicatedKey).
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Course{},
		&model.UserProgress{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.LiveSession{},
		&model.SessionAnswer{},
		&model.Duel{},
		&model.Clan{},
		&model.ClanMember{},
		&model.ClanContribution{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default badge catalog, only when the table is empty.
	var count int64
	db.Model(&model.Badge{}).Count(&count)
	if count == 0 {
		xp100 := 100
		xp1000 := 1000
		courses5 := 5
		streak7 := 7
		defaultBadges := []model.Badge{
			{Name: "Première banane", Icon: "banana.png", Description: "Earn your first 100 bananes", ConditionType: model.ConditionXP, ThresholdXP: &xp100},
			{Name: "Roi de la jungle", Icon: "crown.png", Description: "Earn 1000 bananes", ConditionType: model.ConditionXP, ThresholdXP: &xp1000},
			{Name: "Top 10", Icon: "podium.png", Description: "Reach the top 10 of the leaderboard", ConditionType: model.ConditionTop10},
			{Name: "Explorateur", Icon: "map.png", Description: "Complete 5 courses", ConditionType: model.ConditionCoursesCompleted, ConditionValue: &courses5},
			{Name: "Assidu", Icon: "flame.png", Description: "Keep a 7-day streak", ConditionType: model.ConditionStreak, ConditionValue: &streak7},
		}
		for _, b := range defaultBadges {
			db.Create(&b)
		}
	}

	return db, nil
}
