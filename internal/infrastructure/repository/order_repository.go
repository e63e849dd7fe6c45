package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
	domainRepo "github.com/bonusplayerslive-star/neon-kafe/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) ListActive(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("status <> ?", enum.OrderStatusClosed).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByTable(ctx context.Context, tableNo string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("table_no = ? AND status <> ?", tableNo, enum.OrderStatusClosed).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) DeleteByTable(ctx context.Context, tableNo string) error {
	return r.db.WithContext(ctx).
		Where("table_no = ?", tableNo).
		Delete(&entity.Order{}).Error
}

func (r *orderRepository) OccupiedTables(ctx context.Context) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status <> ?", enum.OrderStatusClosed).
		Distinct("table_no").
		Order("table_no ASC").
		Pluck("table_no", &tables).Error
	return tables, err
}
