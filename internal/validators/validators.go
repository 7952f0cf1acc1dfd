package validators

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Validate проверяет обязательные поля формы по тегам validate
func Validate(form any) error {
	err := get().Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(fields, ", "))
}

// Required - проверка одного строкового значения
func Required(name, value string) error {
	if err := get().Var(strings.TrimSpace(value), "required"); err != nil {
		return fmt.Errorf("%w: missing %s", ErrValidation, name)
	}
	return nil
}
