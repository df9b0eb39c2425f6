package service

import "errors"

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseInactive   = errors.New("course is not active")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoPermission     = errors.New("no permission for this booking")
	ErrBookingNotActive = errors.New("booking is not active")
)
