package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorWrapping(t *testing.T) {
	appErr := NewAppError(ErrCodeSaleNotFound, "Sale not found", ErrSaleNotFound)
	wrapped := fmt.Errorf("controller: %w", appErr)

	if !IsAppError(wrapped) {
		t.Fatal("expected wrapped AppError to be found")
	}
	if GetAppError(wrapped) != appErr {
		t.Error("GetAppError returned a different error")
	}
	if !HasCode(wrapped, ErrCodeSaleNotFound) || HasCode(wrapped, ErrCodeDBError) {
		t.Error("HasCode mismatch")
	}
	if !errors.Is(wrapped, ErrSaleNotFound) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if appErr.Error() != "[SALE_NOT_FOUND] Sale not found: sale not found" {
		t.Errorf("Error() = %q", appErr.Error())
	}
	if got := NewAppError(ErrCodeValidation, "bad", nil).Error(); got != "[VALIDATION_ERROR] bad" {
		t.Errorf("Error() = %q", got)
	}
	if IsAppError(errors.New("plain")) || HasCode(nil, ErrCodeDBError) {
		t.Error("plain errors are not AppErrors")
	}
}
