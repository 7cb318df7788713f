package models

import "time"

// Message is a buyer-to-seller contact message or a seller reply. Replies
// form a one-level thread: a root has a nil parent, a reply always points at
// an existing root. No code path nests deeper, deliberately.
type Message struct {
	BaseModel
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
	SellerID  string `gorm:"type:uuid;not null;index" json:"seller_id"`

	BuyerName  string `gorm:"size:100;not null" json:"buyer_name"`
	BuyerEmail string `gorm:"size:120;not null" json:"buyer_email"`
	Body       string `gorm:"column:message_text;type:text;not null" json:"message_text"`

	IsRead bool `gorm:"not null;default:false" json:"is_read"`

	// Outbound notification bookkeeping; delivery is best-effort and never
	// blocks persistence of the message itself.
	EmailSent   bool       `gorm:"not null;default:false" json:"email_sent"`
	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`

	IsReply         bool    `gorm:"not null;default:false" json:"is_reply"`
	ParentMessageID *string `gorm:"type:uuid;index" json:"parent_message_id,omitempty"`

	Product Product   `gorm:"foreignKey:ProductID" json:"-"`
	Seller  User      `gorm:"foreignKey:SellerID" json:"-"`
	Replies []Message `gorm:"foreignKey:ParentMessageID" json:"-"`
}
