package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/model"
)

type OrderEntity struct {
	ID         int64             `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64             `db:"customer_id" gorm:"column:customer_id;not null;index"`
	Customer   *CustomerEntity   `db:"-"           gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
	Amount     decimal.Decimal   `db:"amount"      gorm:"column:amount;type:numeric(12,2);not null"`
	Status     model.OrderStatus `db:"status"      gorm:"column:status;type:text;not null;default:'pending'"`
	OrderDate  time.Time         `db:"order_date"  gorm:"column:order_date;type:date;not null;default:CURRENT_DATE"`
}

func (OrderEntity) TableName() string {
	return "orders"
}

func toOrderEntities(seeds []model.SeedOrder) []*OrderEntity {
	entities := make([]*OrderEntity, len(seeds))
	for i, s := range seeds {
		entities[i] = &OrderEntity{
			CustomerID: s.CustomerID,
			Amount:     s.Amount,
			Status:     s.Status,
			OrderDate:  s.OrderDate,
		}
	}
	return entities
}
