package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrRecordAlreadyExists = errors.New("Record already exists")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrInvalidAmount = errors.New("Invalid amount")
