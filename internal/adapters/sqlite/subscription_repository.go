package sqlite

import (
	"context"
	"fmt"
	"time"

	"fxalerts/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// subscriptionModel is the table row; domain.Subscription stays free of gorm tags.
type subscriptionModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;index:idx_user_pair"`
	Base      string  `gorm:"size:6;not null;index:idx_user_pair"`
	Quote     string  `gorm:"size:6;not null;index:idx_user_pair"`
	Operator  string  `gorm:"size:2;not null"`
	Threshold float64 `gorm:"not null"`
	CreatedAt time.Time
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func (m subscriptionModel) toDomain() domain.Subscription {
	return domain.Subscription{
		ID:        m.ID,
		UserID:    m.UserID,
		Base:      m.Base,
		Quote:     m.Quote,
		Operator:  domain.Operator(m.Operator),
		Threshold: m.Threshold,
	}
}

type SubscriptionRepository struct {
	db *gorm.DB
}

// Open connects to the SQLite file at dsn and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&subscriptionModel{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *SubscriptionRepository) All(ctx context.Context) ([]domain.Subscription, error) {
	var rows []subscriptionModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	return toDomain(rows), nil
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var rows []subscriptionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query subscriptions of user %d: %w", userID, err)
	}
	return toDomain(rows), nil
}

func (r *SubscriptionRepository) Add(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	row := subscriptionModel{
		UserID:    sub.UserID,
		Base:      sub.Base,
		Quote:     sub.Quote,
		Operator:  string(sub.Operator),
		Threshold: sub.Threshold,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to insert subscription %s for user %d: %w", sub.Pair(), sub.UserID, err)
	}
	return row.toDomain(), nil
}

func (r *SubscriptionRepository) Remove(ctx context.Context, userID int64, base string, quote string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? and base = ? and quote = ?", userID, base, quote).
		Delete(&subscriptionModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete subscriptions %q/%q of user %d: %w", base, quote, userID, res.Error)
	}
	return res.RowsAffected, nil
}

func toDomain(rows []subscriptionModel) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toDomain())
	}
	return subs
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}
