package repository

import (
	"github.com/emwambold/order-automation/internal/model"
)

type CustomerEntity struct {
	ID         int64   `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	FirstName  string  `db:"first_name"  gorm:"column:first_name;not null"`
	MiddleName *string `db:"middle_name" gorm:"column:middle_name"`
	LastName   string  `db:"last_name"   gorm:"column:last_name;not null"`
	City       *string `db:"city"        gorm:"column:city"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func newCustomerEntity(p model.CustomerWithFirstOrder) *CustomerEntity {
	return &CustomerEntity{
		FirstName:  p.FirstName,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		City:       p.City,
	}
}

func toCustomerEntities(seeds []model.SeedCustomer) []*CustomerEntity {
	entities := make([]*CustomerEntity, len(seeds))
	for i, s := range seeds {
		entities[i] = &CustomerEntity{
			FirstName:  s.FirstName,
			MiddleName: s.MiddleName,
			LastName:   s.LastName,
			City:       s.City,
		}
	}
	return entities
}
