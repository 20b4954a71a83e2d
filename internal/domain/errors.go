package domain

import "errors"

var (
	// ErrClassAlreadyExists is returned when issuing a class ID that is taken
	ErrClassAlreadyExists = errors.New("class already exists")

	// ErrClassNotFound is returned when a class is not registered
	ErrClassNotFound = errors.New("class not found")

	// ErrNFTAlreadyExists is returned when minting an ID that is taken within its class
	ErrNFTAlreadyExists = errors.New("nft already exists")

	// ErrNFTNotFound is returned when an asset record is not found
	ErrNFTNotFound = errors.New("nft not found")

	// ErrPermissionDenied is returned when the caller fails a mint, edit,
	// send or burn permission check
	ErrPermissionDenied = errors.New("permission denied")

	// ErrLedgerFailure wraps errors surfaced by the fungible ledger
	ErrLedgerFailure = errors.New("ledger failure")

	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// ErrInvalidArgument is returned when a request fails validation before
	// reaching any store
	ErrInvalidArgument = errors.New("invalid argument")
)
