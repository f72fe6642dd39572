package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	if err := register(v); err != nil {
		return err
	}

	slog.Info("공통 Validator 등록 완료", "validators", "alphanumspace,digits")
	return nil
}

func register(v *validator.Validate) error {
	if err := v.RegisterValidation("alphanumspace", ValidateAlphanumSpace); err != nil {
		return fmt.Errorf("alphanumspace validator 등록 실패: %w", err)
	}
	if err := v.RegisterValidation("digits", ValidateDigits); err != nil {
		return fmt.Errorf("digits validator 등록 실패: %w", err)
	}
	return nil
}
