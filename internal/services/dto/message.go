package dto

import "time"

type SendInquiryRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid"`
	SellerID   string `json:"seller_id" validate:"required,uuid"`
	BuyerName  string `json:"buyer_name" validate:"required,notblank,max=100"`
	BuyerEmail string `json:"buyer_email" validate:"required,notblank,max=120"`
	Body       string `json:"message_text" validate:"required,notblank"`
}

type ReplyRequest struct {
	MessageID string `json:"message_id" validate:"required,uuid"`
	ToEmail   string `json:"to_email" validate:"required,notblank,max=120"`
	Subject   string `json:"subject" validate:"required,notblank,max=200"`
	Body      string `json:"message" validate:"required,notblank"`
}

type MarkReadRequest struct {
	MessageID string `json:"message_id" validate:"required,uuid"`
	// Defaults to true when absent, matching the mark-as-read action.
	Read *bool `json:"mark_as_read" validate:"omitempty"`
}

type MessageResponse struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name,omitempty"`
	SellerID        string     `json:"seller_id"`
	BuyerName       string     `json:"buyer_name"`
	BuyerEmail      string     `json:"buyer_email"`
	Body            string     `json:"message_text"`
	IsRead          bool       `json:"is_read"`
	EmailSent       bool       `json:"email_sent"`
	EmailSentAt     *time.Time `json:"email_sent_at,omitempty"`
	IsReply         bool       `json:"is_reply"`
	ParentMessageID *string    `json:"parent_message_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SendOutcome reports persistence plus the advisory email-delivery flag.
type SendOutcome struct {
	Message   MessageResponse `json:"message"`
	EmailSent bool            `json:"email_sent"`
}

type ThreadResponse struct {
	Original MessageResponse   `json:"original_message"`
	Replies  []MessageResponse `json:"replies"`
}

type InboxResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
