package service

import "errors"

var (
	ErrMissingWebhookData = errors.New("missing membership data in webhook event")
	ErrUserNotFound       = errors.New("user not found")
	ErrMembershipInsert   = errors.New("failed to insert membership")
)
