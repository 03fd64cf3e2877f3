package database

import (
	"errors"
	"log"

	"glitchmart/models"

	"gorm.io/gorm"
)

// demoCatalog is the seeded storefront inventory. IDs are stable so the
// UI and scripted monitors can reference them directly.
var demoCatalog = []models.Product{
	{ID: "p1", Name: "Aurora Desk Lamp", Description: "Dimmable LED desk lamp with a weighted aluminum base and touch controls.", Price: 49.99, ImageURL: "/images/p1.jpg", Stock: 24},
	{ID: "p2", Name: "Nimbus Wireless Mouse", Description: "Low-latency wireless mouse with a six-month battery life.", Price: 29.50, ImageURL: "/images/p2.jpg", Stock: 58},
	{ID: "p3", Name: "Granite Mechanical Keyboard", Description: "Hot-swappable 75% keyboard with PBT keycaps and south-facing switches.", Price: 119.00, ImageURL: "/images/p3.jpg", Stock: 17},
	{ID: "p4", Name: "Cirrus Laptop Stand", Description: "Foldable laptop stand machined from a single sheet of aluminum.", Price: 39.95, ImageURL: "/images/p4.jpg", Stock: 41},
	{ID: "p5", Name: "Drift USB-C Hub", Description: "7-in-1 hub with HDMI 2.1, gigabit ethernet and 100W passthrough.", Price: 64.00, ImageURL: "/images/p5.jpg", Stock: 33},
	{ID: "p6", Name: "Ember Smart Mug", Description: "Temperature-controlled ceramic mug, keeps coffee at 57°C for hours.", Price: 99.99, ImageURL: "/images/p6.jpg", Stock: 12},
	{ID: "p7", Name: "Quarry Monitor Arm", Description: "Gas-spring monitor arm rated for displays up to 34 inches.", Price: 89.00, ImageURL: "/images/p7.jpg", Stock: 26},
	{ID: "p8", Name: "Fathom Noise-Cancelling Headphones", Description: "Over-ear headphones with adaptive ANC and 40-hour playback.", Price: 199.00, ImageURL: "/images/p8.jpg", Stock: 19},
	{ID: "p9", Name: "Sable Desk Mat", Description: "Stitched-edge vegan leather desk mat, 80x40cm.", Price: 24.00, ImageURL: "/images/p9.jpg", Stock: 73},
	{ID: "p10", Name: "Vector Webcam", Description: "4K webcam with a magnetic privacy shutter and dual microphones.", Price: 129.00, ImageURL: "/images/p10.jpg", Stock: 21},
	{ID: "p11", Name: "Halcyon Cable Kit", Description: "Braided USB-C cable set in three lengths with leather ties.", Price: 19.99, ImageURL: "/images/p11.jpg", Stock: 94},
	{ID: "p12", Name: "Meridian Footrest", Description: "Adjustable-tilt footrest with a machine-washable cover.", Price: 44.50, ImageURL: "/images/p12.jpg", Stock: 37},
}

// seed pre-populates the fault rows and, when the catalog is empty, the
// demo products. Fault rows are created exactly once per name and are
// never created or deleted from the request path; handlers only flip
// is_enabled via the fault store.
func seed(db *gorm.DB) error {
	for _, name := range models.FaultNames {
		var existing models.Fault
		err := db.First(&existing, "name = ?", name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Fault{Name: name, IsEnabled: false}).Error; err != nil {
			return err
		}
		log.Printf("Seeded fault row: %s", name)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&demoCatalog).Error; err != nil {
			return err
		}
		log.Printf("Seeded demo catalog: %d products", len(demoCatalog))
	}

	return nil
}
