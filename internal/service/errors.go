package service

import "errors"

var (
	// ErrInvalidSenderID is returned when the sender ID is empty.
	ErrInvalidSenderID = errors.New("invalid sender id")

	// ErrInvalidReceiverName is returned when the receiver name is empty.
	ErrInvalidReceiverName = errors.New("invalid receiver name")

	// ErrInvalidReceiverPhone is returned when the receiver phone is empty.
	ErrInvalidReceiverPhone = errors.New("invalid receiver phone")

	// ErrInvalidAddress is returned when the delivery address is empty.
	ErrInvalidAddress = errors.New("invalid delivery address")

	// ErrInvalidWeight is returned when the weight is not a positive number.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrInvalidPaymentMode is returned when the payment mode is empty.
	ErrInvalidPaymentMode = errors.New("invalid payment mode")

	// ErrInvalidTrackingNo is returned when the tracking number is empty.
	ErrInvalidTrackingNo = errors.New("invalid tracking number")

	// ErrInvalidCourierID is returned when the courier ID is empty.
	ErrInvalidCourierID = errors.New("invalid courier id")

	// ErrInvalidName is returned when a user name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidEmail is returned when an email is empty.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword is returned when a password is empty.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidStatus is returned when a delivery status is empty.
	ErrInvalidStatus = errors.New("invalid delivery status")

	// ErrEmailTaken is returned when registering an email that is
	// already present.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for any login failure. The same
	// error covers an unknown email and a wrong password so the message
	// never discloses which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
