package httperrors

import (
	"net/http"

	"github/hdforge/go-wallet/internal/types"
)

var (
	ErrBadRequestInvalidPayload   = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid payload.")
	ErrUnauthorized               = NewHTTPError(http.StatusUnauthorized, types.PublicHTTPErrorTypeGeneric, "Invalid credentials.")
	ErrNotFoundWallet             = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeWALLETNOTFOUND, "Wallet not found.")
	ErrConflictNoMnemonic         = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeNOMNEMONIC, "No mnemonic, generate one first.")
	ErrConflictAccountExists      = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeACCOUNTEXISTS, "An account with this email already exists.")
	ErrConflictWalletLimit        = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeWALLETLIMIT, "Session wallet limit reached.")
	ErrBadRequestUnknownChain     = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeUNKNOWNCHAIN, "Unknown chain.")
	ErrBadRequestInvalidMnemonic  = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDMNEMONIC, "Invalid mnemonic.")
	ErrInternalEntropyUnavailable = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeENTROPYSOURCEUNAVAILABLE, "Entropy source unavailable.")
	ErrInternalDerivationFailed   = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeDERIVATIONFAILED, "Key derivation failed.")
)
