package ledger

import "errors"

var (
	ErrAddressFormat          = errors.New("ledger: malformed address")
	ErrSignatureFormat        = errors.New("ledger: malformed signature")
	ErrSignatureVerification  = errors.New("ledger: signature verification failed")
	ErrAccountIndex           = errors.New("ledger: account index out of range")
	ErrMalformedTransaction   = errors.New("ledger: malformed transaction")
	ErrNotSigner              = errors.New("ledger: key is not a required signer")
	ErrTooManyAccounts        = errors.New("ledger: too many accounts")
	ErrNoViableProgramAddress = errors.New("ledger: no viable program address")
	ErrSeedTooLong            = errors.New("ledger: seed too long")
)
