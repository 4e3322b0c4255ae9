package models

// ContactStatus is the workflow state of a contact submission.
type ContactStatus string

// Contact states.
const (
	ContactUnread    ContactStatus = "unread"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

// Valid reports whether s is a known contact state.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactUnread, ContactRead, ContactResponded:
		return true
	}

	return false
}

// SupportStatus is the workflow state of a support ticket.
type SupportStatus string

// Support states.
const (
	SupportNew        SupportStatus = "new"
	SupportInProgress SupportStatus = "in_progress"
	SupportResolved   SupportStatus = "resolved"
)

// Valid reports whether s is a known support state.
func (s SupportStatus) Valid() bool {
	switch s {
	case SupportNew, SupportInProgress, SupportResolved:
		return true
	}

	return false
}

// FeedbackStatus is the workflow state of a game review.
type FeedbackStatus string

// Feedback states. FeedbackAddedToWishlist marks a promoted review.
const (
	FeedbackNew             FeedbackStatus = "new"
	FeedbackReviewed        FeedbackStatus = "reviewed"
	FeedbackAddedToWishlist FeedbackStatus = "added_to_wishlist"
)

// Valid reports whether s is a known feedback state.
func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackNew, FeedbackReviewed, FeedbackAddedToWishlist:
		return true
	}

	return false
}

// AppRequestStatus is the workflow state of an app or website request.
type AppRequestStatus string

// App request states.
const (
	AppRequestNew        AppRequestStatus = "new"
	AppRequestInProgress AppRequestStatus = "in_progress"
	AppRequestCompleted  AppRequestStatus = "completed"
	AppRequestDeclined   AppRequestStatus = "declined"
)

// Valid reports whether s is a known app request state.
func (s AppRequestStatus) Valid() bool {
	switch s {
	case AppRequestNew, AppRequestInProgress, AppRequestCompleted, AppRequestDeclined:
		return true
	}

	return false
}

// WishlistStatus is the workflow state of a wishlist item.
type WishlistStatus string

// Wishlist states.
const (
	WishlistNotStarted WishlistStatus = "not_started"
	WishlistInProgress WishlistStatus = "in_progress"
	WishlistCompleted  WishlistStatus = "completed"
	WishlistRevisiting WishlistStatus = "revisiting"
)

// Valid reports whether s is a known wishlist state.
func (s WishlistStatus) Valid() bool {
	switch s {
	case WishlistNotStarted, WishlistInProgress, WishlistCompleted, WishlistRevisiting:
		return true
	}

	return false
}

// ContactStatuses lists the contact states in workflow order.
func ContactStatuses() []ContactStatus {
	return []ContactStatus{ContactUnread, ContactRead, ContactResponded}
}

// SupportStatuses lists the support states in workflow order.
func SupportStatuses() []SupportStatus {
	return []SupportStatus{SupportNew, SupportInProgress, SupportResolved}
}

// FeedbackStatuses lists the feedback states in workflow order.
func FeedbackStatuses() []FeedbackStatus {
	return []FeedbackStatus{FeedbackNew, FeedbackReviewed, FeedbackAddedToWishlist}
}

// AppRequestStatuses lists the app request states in workflow order.
func AppRequestStatuses() []AppRequestStatus {
	return []AppRequestStatus{AppRequestNew, AppRequestInProgress, AppRequestCompleted, AppRequestDeclined}
}

// WishlistStatuses lists the wishlist states in workflow order.
func WishlistStatuses() []WishlistStatus {
	return []WishlistStatus{WishlistNotStarted, WishlistInProgress, WishlistCompleted, WishlistRevisiting}
}
