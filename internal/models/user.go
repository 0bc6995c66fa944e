package models

import (
	"errors"
	"strings"
)

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterUserRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RegisterUserResponse struct {
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type LoginResponse struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}
