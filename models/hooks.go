package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

// lookup runs a query against the same connection (and transaction) as the hook's statement.
func lookup(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true})
}

// mustExist returns a 404 AppError when no row of model has the given id.
func mustExist(tx *gorm.DB, model interface{}, id uint, resource string) error {
	var count int64
	if err := lookup(tx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NotFound(resource, fmt.Sprintf("id=%d", id))
	}
	return nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func requireText(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return utils.MissingData(name)
	}
	return nil
}

func checkPhone(phone string) error {
	if err := requireText(phone, "phoneNumber"); err != nil {
		return err
	}
	if !IsValidPhoneNumber(phone) {
		return utils.InvalidData(
			fmt.Sprintf("phoneNumber: %s is not a valid phone number", phone),
			"phoneNumber must look like +254712345678 or 0712345678.")
	}
	return nil
}

func checkNonNegative(value float64, name string) error {
	if value < 0 {
		return utils.InvalidData(
			fmt.Sprintf("%s: %v is negative", name, value),
			fmt.Sprintf("%s must be >= 0.", name))
	}
	return nil
}
