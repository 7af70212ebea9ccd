package models

import "time"

// Comment is a threaded remark attached to a page.
//
// A comment is owned by exactly one of UserID (registered author) or
// GuestName (anonymous author). Guest comments have no owner and can only be
// changed by admins.
type Comment struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	PageID    string  `json:"pageId"`
	ParentID  *int64  `json:"parentId"`
	UserID    *int64  `json:"userId"`
	GuestName *string `json:"guestName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// UserDisplayName is joined from users and read-only.
	UserDisplayName *string `json:"userDisplayName"`
}

// CommentUpdate is the body of PUT /api/comments/{id}.
type CommentUpdate struct {
	Content string `json:"content"`
}

// CommentFilter narrows a comment listing. An empty PageID lists every page.
type CommentFilter struct {
	PageID string
}
