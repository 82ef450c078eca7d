package controllers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the domain tags on gin's binding validator and
// makes field errors report json names.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		if err = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			return entity.TimeSlot(fl.Field().String()).Valid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			return entity.ValidWeekDay(strings.ToLower(strings.TrimSpace(fl.Field().String())))
		})
	})
	return err
}
