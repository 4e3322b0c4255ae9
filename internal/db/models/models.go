package models

// All returns one zero value per table, in migration order.
func All() []any {
	return []any{
		&ContactSubmission{},
		&SupportTicket{},
		&GameFeedback{},
		&AppRequest{},
		&WishlistItem{},
	}
}
