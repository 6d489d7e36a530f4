package entity

import "errors"

// Domain errors for the vocabulary aggregates.
var (
	ErrDomainNotFound         = errors.New("domain not found")
	ErrInvalidDomainName      = errors.New("invalid domain name")
	ErrTermNotFound           = errors.New("term not found")
	ErrInvalidTermWord        = errors.New("invalid term word")
	ErrInvalidTermID          = errors.New("invalid term ID")
	ErrSentenceNotFound       = errors.New("sentence not found")
	ErrInvalidSentenceContent = errors.New("invalid sentence content")
	ErrInvalidCandidate       = errors.New("invalid candidate")
)
