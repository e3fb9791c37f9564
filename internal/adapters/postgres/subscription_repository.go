package postgres

import (
	"context"
	"fmt"

	"fxalerts/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func (r *SubscriptionRepository) All(ctx context.Context) ([]domain.Subscription, error) {
	const q = `
		select id, user_id, base, quote, operator, threshold
		from subscriptions
		order by id;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	return scanSubscriptions(rows)
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	const q = `
		select id, user_id, base, quote, operator, threshold
		from subscriptions
		where user_id = $1
		order by id;
	`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions of user %d: %w", userID, err)
	}
	return scanSubscriptions(rows)
}

func (r *SubscriptionRepository) Add(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	const q = `
		insert into subscriptions (user_id, base, quote, operator, threshold)
		values ($1, $2, $3, $4, $5)
		returning id;
	`

	if err := r.pool.QueryRow(ctx, q, sub.UserID, sub.Base, sub.Quote, string(sub.Operator), sub.Threshold).Scan(&sub.ID); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to insert subscription %s for user %d: %w", sub.Pair(), sub.UserID, err)
	}
	return sub, nil
}

func (r *SubscriptionRepository) Remove(ctx context.Context, userID int64, base string, quote string) (int64, error) {
	const q = `delete from subscriptions where user_id = $1 and base = $2 and quote = $3;`

	tag, err := r.pool.Exec(ctx, q, userID, base, quote)
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscriptions %q/%q of user %d: %w", base, quote, userID, err)
	}
	return tag.RowsAffected(), nil
}

func scanSubscriptions(rows pgx.Rows) ([]domain.Subscription, error) {
	defer rows.Close()

	subs := make([]domain.Subscription, 0, 64)
	for rows.Next() {
		var s domain.Subscription
		var op string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Base, &s.Quote, &op, &s.Threshold); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		s.Operator = domain.Operator(op)
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}
	return subs, nil
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}
