package service

import (
	"glitchmart/database"

	"gorm.io/gorm"
)

// Services is the global service container
type Services struct {
	Fault   *FaultService
	Product *ProductService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(db *gorm.DB) {
	faultSvc := NewFaultService(database.NewFaultStore(db))
	productSvc := NewProductService(db)

	GlobalServices = &Services{
		Fault:   faultSvc,
		Product: productSvc,
	}
}
