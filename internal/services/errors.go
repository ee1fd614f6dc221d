package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrAlreadyBooked      = errors.New("event already booked by this user")
	ErrAlreadyReviewed    = errors.New("event already reviewed by this user")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrNotConfirmed       = errors.New("booking is not confirmed")
	ErrInvalidInput       = errors.New("invalid input")
)
