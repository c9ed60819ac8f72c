package domain

import "errors"

var (
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("entity not found")
	ErrDataLoad       = errors.New("static data load failed")

	ErrProductNotFound  = errors.New("product not found")
	ErrShipmentNotFound = errors.New("shipment not found")

	ErrUnknownSizeLabel = errors.New("unknown size label in shipment configuration")
)
