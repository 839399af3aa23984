// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entry_kind", validateEntryKind)
		_ = v.RegisterValidation("entry_status", validateEntryStatus)
		_ = v.RegisterValidation("payee_kind", validatePayeeKind)
		_ = v.RegisterValidation("user_role", validateUserRole)
		_ = v.RegisterValidation("obligation_status", validateObligationStatus)
		_ = v.RegisterValidation("due_day", validateDueDay)
	}
}

func validateEntryKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateEntryStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid":
		return true
	}
	return false
}

func validatePayeeKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "client", "supplier":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "admin", "client", "user":
		return true
	}
	return false
}

func validateObligationStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "inactive":
		return true
	}
	return false
}

func validateDueDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}
