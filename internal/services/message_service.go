package services

import (
	"fmt"
	"regexp"
	"time"

	"flohmarkt_backend/internal/auth"
	"flohmarkt_backend/internal/email"
	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// buyerEmailPattern is deliberately loose: it only rejects strings that
// cannot possibly be addresses. Real deliverability is decided by the SMTP
// hop.
var buyerEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MessageService handles buyer-to-seller inquiries and the seller's replies.
// A thread is one root inquiry plus its replies. Persistence always wins over
// delivery: the message row commits first and the email goes out afterwards
// on a best-effort basis, with the outcome recorded on the row.
type MessageService interface {
	SendInquiry(db *gorm.DB, req *dto.SendInquiryRequest) (*dto.SendOutcome, error)
	Reply(db *gorm.DB, userID string, role models.UserRole, req *dto.ReplyRequest) (*dto.SendOutcome, error)
	MarkRead(db *gorm.DB, userID string, role models.UserRole, req *dto.MarkReadRequest) (*dto.MessageResponse, error)
	GetThread(db *gorm.DB, userID string, role models.UserRole, messageID string) (*dto.ThreadResponse, error)
	Inbox(db *gorm.DB, userID string, role models.UserRole, page, pageSize int) (*dto.InboxResponse, error)
	UnreadCount(db *gorm.DB, userID string, role models.UserRole) (*dto.UnreadCountResponse, error)
}

type messageService struct {
	messageRepo repositories.MessageRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	mailer      email.Provider
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// SendInquiry stores an unauthenticated buyer's question about a product and
// notifies the seller by email. Validation happens up front so a bad request
// writes nothing at all.
func (s *messageService) SendInquiry(db *gorm.DB, req *dto.SendInquiryRequest) (*dto.SendOutcome, error) {
	if !buyerEmailPattern.MatchString(req.BuyerEmail) {
		return nil, apperrors.ValidationError(map[string]string{
			"buyer_email": "must be a valid email address",
		})
	}

	product, err := s.productRepo.FindByID(db, req.ProductID)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, apperrors.NewProductNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	seller, err := s.userRepo.FindByID(db, req.SellerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}
	if product.UserID != seller.ID {
		return nil, apperrors.NewBadRequestError("seller does not own this product")
	}

	message := &models.Message{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Body:       req.Body,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.messageRepo.Create(tx, message)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	subject := fmt.Sprintf("استفسار جديد عن: %s", product.Name)
	body := fmt.Sprintf("من: %s <%s>\n\n%s", req.BuyerName, req.BuyerEmail, req.Body)
	sent, sentAt := s.deliver(db, message.ID, seller.Email, subject, body)

	logger.Info("inquiry stored",
		"message_id", message.ID, "product_id", product.ID, "email_sent", sent)

	message.EmailSent = sent
	message.EmailSentAt = sentAt
	message.Product = *product
	return &dto.SendOutcome{
		Message:   *buildMessageResponse(message),
		EmailSent: sent,
	}, nil
}

// Reply records the seller's answer as a child of the root message, marks the
// root read, and emails the buyer. The reply row and the read flag commit
// together; the email happens after the commit.
func (s *messageService) Reply(db *gorm.DB, userID string, role models.UserRole, req *dto.ReplyRequest) (*dto.SendOutcome, error) {
	parent, err := s.findMessage(db, req.MessageID)
	if err != nil {
		return nil, err
	}

	if !auth.CanAccessMessages(userID, role, parent.Product.UserID) {
		return nil, apperrors.NewMessagePermissionError()
	}

	// The seller authored the reply, so it is born read; only inbound
	// inquiries count as unread.
	reply := &models.Message{
		ProductID:       parent.ProductID,
		SellerID:        parent.SellerID,
		BuyerName:       parent.BuyerName,
		BuyerEmail:      parent.BuyerEmail,
		Body:            req.Body,
		IsRead:          true,
		IsReply:         true,
		ParentMessageID: &parent.ID,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.messageRepo.Create(tx, reply); err != nil {
			return err
		}
		parent.IsRead = true
		return s.messageRepo.Update(tx, parent)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	sent, sentAt := s.deliver(db, reply.ID, req.ToEmail, req.Subject, req.Body)

	logger.Info("reply stored",
		"message_id", reply.ID, "parent_id", parent.ID, "email_sent", sent)

	reply.EmailSent = sent
	reply.EmailSentAt = sentAt
	reply.Product = parent.Product
	return &dto.SendOutcome{
		Message:   *buildMessageResponse(reply),
		EmailSent: sent,
	}, nil
}

func (s *messageService) MarkRead(db *gorm.DB, userID string, role models.UserRole, req *dto.MarkReadRequest) (*dto.MessageResponse, error) {
	message, err := s.findMessage(db, req.MessageID)
	if err != nil {
		return nil, err
	}

	if !auth.CanAccessMessages(userID, role, message.Product.UserID) {
		return nil, apperrors.NewMessagePermissionError()
	}

	read := true
	if req.Read != nil {
		read = *req.Read
	}
	message.IsRead = read
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.messageRepo.Update(tx, message)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return buildMessageResponse(message), nil
}

func (s *messageService) GetThread(db *gorm.DB, userID string, role models.UserRole, messageID string) (*dto.ThreadResponse, error) {
	message, err := s.findMessage(db, messageID)
	if err != nil {
		return nil, err
	}

	if !auth.CanAccessMessages(userID, role, message.Product.UserID) {
		return nil, apperrors.NewMessagePermissionError()
	}

	// Asking for a reply resolves to its thread root.
	if message.IsReply && message.ParentMessageID != nil {
		if message, err = s.findMessage(db, *message.ParentMessageID); err != nil {
			return nil, err
		}
	}

	replies, err := s.messageRepo.FindReplies(db, message.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	resp := &dto.ThreadResponse{
		Original: *buildMessageResponse(message),
		Replies:  make([]dto.MessageResponse, 0, len(replies)),
	}
	for i := range replies {
		resp.Replies = append(resp.Replies, *buildMessageResponse(&replies[i]))
	}
	return resp, nil
}

// Inbox lists root messages for the caller's products, newest first. Admins
// see every seller's inbox.
func (s *messageService) Inbox(db *gorm.DB, userID string, role models.UserRole, page, pageSize int) (*dto.InboxResponse, error) {
	ownerID := userID
	if role == models.UserRoleAdmin {
		ownerID = ""
	}

	messages, total, err := s.messageRepo.FindInbox(db, ownerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	resp := &dto.InboxResponse{
		Messages: make([]dto.MessageResponse, 0, len(messages)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, *buildMessageResponse(&messages[i]))
	}
	return resp, nil
}

func (s *messageService) UnreadCount(db *gorm.DB, userID string, role models.UserRole) (*dto.UnreadCountResponse, error) {
	var (
		count int64
		err   error
	)
	if role == models.UserRoleAdmin {
		count, err = s.messageRepo.CountUnread(db)
	} else {
		count, err = s.messageRepo.CountUnreadByOwner(db, userID)
	}
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// deliver sends the email and stamps the row on success, returning the stamp
// time. A failure only logs; the stored message stands either way.
func (s *messageService) deliver(db *gorm.DB, messageID, to, subject, body string) (bool, *time.Time) {
	if err := s.mailer.Send(to, subject, body); err != nil {
		logger.Warn("email delivery failed", "message_id", messageID, "error", err)
		return false, nil
	}
	sentAt := time.Now()
	if err := s.messageRepo.MarkEmailSent(db, messageID, sentAt); err != nil {
		logger.Warn("failed to stamp email_sent", "message_id", messageID, "error", err)
	}
	return true, &sentAt
}

func (s *messageService) findMessage(db *gorm.DB, messageID string) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		if err == repositories.ErrMessageNotFound {
			return nil, apperrors.NewMessageNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}
	return message, nil
}

func buildMessageResponse(message *models.Message) *dto.MessageResponse {
	resp := &dto.MessageResponse{
		ID:              message.ID,
		ProductID:       message.ProductID,
		SellerID:        message.SellerID,
		BuyerName:       message.BuyerName,
		BuyerEmail:      message.BuyerEmail,
		Body:            message.Body,
		IsRead:          message.IsRead,
		EmailSent:       message.EmailSent,
		EmailSentAt:     message.EmailSentAt,
		IsReply:         message.IsReply,
		ParentMessageID: message.ParentMessageID,
		CreatedAt:       message.CreatedAt,
	}
	if message.Product.ID != "" {
		resp.ProductName = message.Product.Name
	}
	return resp
}
