package models

import "time"

// TeamMember is a bio shown on the team page.
type TeamMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       *string   `json:"bio"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsArticle is a news item. PublishedDate defaults to the creation time.
type NewsArticle struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ImageURL      *string    `json:"imageUrl"`
	PublishedDate *time.Time `json:"publishedDate"`
	Author        *string    `json:"author"`
	Source        *string    `json:"source"`
	IsFeatured    bool       `json:"isFeatured"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AboutSection is one ordered block of the about page.
//
// OrderIndex values are dense and start at 0. A nil OrderIndex on create
// appends the section; on update it keeps the current position.
type AboutSection struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OrderIndex *int      `json:"orderIndex"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ContactMessage is a public contact-form submission read by admins.
type ContactMessage struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   *string    `json:"subject"`
	Message   string     `json:"message"`
	Date      *time.Time `json:"date"`
	IsRead    bool       `json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ContactStatusUpdate is the body of PUT /api/contact/{id}.
type ContactStatusUpdate struct {
	IsRead *bool `json:"isRead"`
}

// ContactCreatedResponse acknowledges a contact-form submission.
type ContactCreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
