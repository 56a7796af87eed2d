package model

import "time"

type Customer struct {
	CustomerID uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null;type:varchar(100)" json:"name"`
	Email      string    `gorm:"not null;type:varchar(100);uniqueIndex" json:"email"`
	Document   string    `gorm:"not null;type:varchar(20);uniqueIndex" json:"document"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"createdAt"`
}
