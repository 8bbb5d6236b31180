package model

import (
	"fmt"
)

// Category is the closed set of service categories a product can belong to
type Category string

const (
	CategoryRepair     Category = "repair"
	CategorySoftware   Category = "software"
	CategoryHardware   Category = "hardware"
	CategoryConsulting Category = "consulting"
)

// Categories lists every valid category in display order
var Categories = []Category{CategoryRepair, CategorySoftware, CategoryHardware, CategoryConsulting}

// ParseCategory converts a raw string into a Category, rejecting unknown values
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryRepair, CategorySoftware, CategoryHardware, CategoryConsulting:
		return true
	}
	return false
}

// Product is a catalog offering created by an administrator
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Category    Category `json:"category"`
}

// CreateProductRequest is used by admins to add a product
type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category" binding:"required"`
}
