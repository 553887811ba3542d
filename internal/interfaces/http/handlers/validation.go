package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// srCodeRegex matches student registration codes of the form NN-NNNNN.
var srCodeRegex = regexp.MustCompile(`^\d{2}-\d{5}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("srcode", func(fl validator.FieldLevel) bool {
			return srCodeRegex.MatchString(fl.Field().String())
		})
	}
}
