package utils

import (
	"errors"
	"net/http"
)

// Kategori error bisnis yang dikembalikan oleh validators dan controllers.
// Semua error membawa pesan yang siap ditampilkan ke user.

// ValidationError -> input kosong / salah format / di luar rentang.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// UniquenessError -> username / email sudah dipakai user lain.
type UniquenessError struct {
	Reason string
}

func (e *UniquenessError) Error() string { return e.Reason }

func NewUniquenessError(reason string) error {
	return &UniquenessError{Reason: reason}
}

// SelectionError -> referensi wajib belum dipilih (transaksi / staff).
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string { return e.Reason }

func NewSelectionError(reason string) error {
	return &SelectionError{Reason: reason}
}

// NotFoundError -> entity yang dirujuk tidak ada di database.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

func NewNotFoundError(reason string) error {
	return &NotFoundError{Reason: reason}
}

// StoreError membungkus kegagalan dari persistence gateway.
// Tidak ada retry di level ini, error langsung diteruskan ke caller.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(err error) error {
	return &StoreError{Err: err}
}

// StatusForError memetakan kategori error ke HTTP status code.
func StatusForError(err error) int {
	var (
		validationErr *ValidationError
		uniquenessErr *UniquenessError
		selectionErr  *SelectionError
		notFoundErr   *NotFoundError
		storeErr      *StoreError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &selectionErr):
		return http.StatusBadRequest
	case errors.As(err, &uniquenessErr):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
