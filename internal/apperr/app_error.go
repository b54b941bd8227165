package apperr

import (
	"fmt"

	"github.com/mvergaraz/puntoventa/pkg/zerror"
)

const (
	ValidationErrorCode   = "VALIDATION_FAILED"
	ProductNotFoundCode   = "PRODUCT_NOT_FOUND"
	CustomerNotFoundCode  = "CUSTOMER_NOT_FOUND"
	SaleNotFoundCode      = "SALE_NOT_FOUND"
	InvalidEmailCode      = "INVALID_EMAIL"
	InvalidPhoneCode      = "INVALID_PHONE"
	InsufficientStockCode = "INSUFFICIENT_STOCK"
)

// Error messages stay in the domain language of the stored documents and
// the clients consuming this API.
var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundCode, "Producto no encontrado")
	CustomerNotFoundErr = zerror.NewNotFound(CustomerNotFoundCode, "Cliente no encontrado")
	SaleNotFoundErr     = zerror.NewNotFound(SaleNotFoundCode, "Venta no encontrada")

	InvalidEmailErr = zerror.NewValidationFailed(InvalidEmailCode, "Formato de email inválido")
	InvalidPhoneErr = zerror.NewValidationFailed(InvalidPhoneCode, "Formato de teléfono inválido")
)

// SaleProductNotFound names the offending product id when a sale
// references a product that does not exist.
func SaleProductNotFound(productID string) zerror.ZError {
	return zerror.NewNotFound(ProductNotFoundCode, fmt.Sprintf("Producto %s no encontrado", productID))
}

// InsufficientStock reports a line item asking for more units than the
// product currently has in stock.
func InsufficientStock(productName string) zerror.ZError {
	return zerror.NewValidationFailed(InsufficientStockCode, fmt.Sprintf("Stock insuficiente para %s", productName))
}
