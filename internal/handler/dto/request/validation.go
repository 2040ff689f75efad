package request

import (
	"travel-booking/internal/domain/product"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations hooks domain-aware tags into gin's binding validator.
// Call once at router setup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("producttype", func(fl validator.FieldLevel) bool {
		return product.Type(fl.Field().String()).IsValid()
	})
}
