package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrInvalidRole = errors.New("invalid role")

var ErrNotMember = errors.New("user is not a member")
