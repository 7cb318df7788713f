package services_test

import (
	"testing"

	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInquiry_BadEmailPersistsNothing(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	mailer := &fakeMailer{}
	sc := newTestContainer(t, mailer)
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "الإلكترونيات")
	product := createProduct(t, db, seller, category, 250, models.ProductStatusApproved)

	for _, bad := range []string{"not-an-email", "a b@test.com", "a@b", "@test.com"} {
		_, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
			ProductID:  product.ID,
			SellerID:   seller.ID,
			BuyerName:  "زائر",
			BuyerEmail: bad,
			Body:       "هل ما زال متوفراً؟",
		})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	}

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
	assert.Empty(t, mailer.sent)
}

func TestSendInquiry_PersistsAndEmailsSeller(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	mailer := &fakeMailer{}
	sc := newTestContainer(t, mailer)
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "الهواتف المحمولة")
	product := createProduct(t, db, seller, category, 800, models.ProductStatusApproved)

	outcome, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "هل يوجد ضمان؟",
	})
	require.NoError(t, err)

	assert.True(t, outcome.EmailSent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "seller@test.com", mailer.sent[0].To)

	var stored models.Message
	require.NoError(t, db.First(&stored, "id = ?", outcome.Message.ID).Error)
	assert.False(t, stored.IsReply)
	assert.False(t, stored.IsRead)
	assert.True(t, stored.EmailSent)
	require.NotNil(t, stored.EmailSentAt)
}

func TestSendInquiry_DeliveryFailureIsAdvisory(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	mailer := &fakeMailer{fail: true}
	sc := newTestContainer(t, mailer)
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "عقارات")
	product := createProduct(t, db, seller, category, 50000, models.ProductStatusApproved)

	outcome, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "أرغب في المعاينة",
	})
	require.NoError(t, err)

	// The message survives even though the email bounced
	assert.False(t, outcome.EmailSent)

	var stored models.Message
	require.NoError(t, db.First(&stored, "id = ?", outcome.Message.ID).Error)
	assert.False(t, stored.EmailSent)
	assert.Nil(t, stored.EmailSentAt)
}

func TestSendInquiry_SellerMustOwnProduct(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	other := createUser(t, db, "آخر", "other@test.com", models.UserRoleUser)
	category := createCategory(t, db, "أثاث منزلي")
	product := createProduct(t, db, seller, category, 150, models.ProductStatusApproved)

	_, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   other.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "سؤال",
	})
	require.Error(t, err)

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestReply_ThreadsAndMarksParentRead(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	mailer := &fakeMailer{}
	sc := newTestContainer(t, mailer)
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "سماعات لاسلكية")
	product := createProduct(t, db, seller, category, 90, models.ProductStatusApproved)

	inquiry, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "كم مدة البطارية؟",
	})
	require.NoError(t, err)

	outcome, err := sc.MessageService.Reply(db, seller.ID, models.UserRoleUser, &dto.ReplyRequest{
		MessageID: inquiry.Message.ID,
		ToEmail:   "visitor@test.com",
		Subject:   "رد على استفسارك",
		Body:      "ثماني ساعات تقريباً",
	})
	require.NoError(t, err)

	assert.True(t, outcome.Message.IsReply)
	require.NotNil(t, outcome.Message.ParentMessageID)
	assert.Equal(t, inquiry.Message.ID, *outcome.Message.ParentMessageID)
	assert.True(t, outcome.EmailSent)
	require.NotNil(t, outcome.Message.EmailSentAt)

	// The seller's own reply is born read, in memory and in the store
	assert.True(t, outcome.Message.IsRead)
	var storedReply models.Message
	require.NoError(t, db.First(&storedReply, "id = ?", outcome.Message.ID).Error)
	assert.True(t, storedReply.IsRead)

	// Parent is now read
	var parent models.Message
	require.NoError(t, db.First(&parent, "id = ?", inquiry.Message.ID).Error)
	assert.True(t, parent.IsRead)

	// Nothing in the thread counts as unread anymore
	unread, err := sc.MessageService.UnreadCount(db, seller.ID, models.UserRoleUser)
	require.NoError(t, err)
	assert.Zero(t, unread.Count)

	// The buyer got the reply
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "visitor@test.com", mailer.sent[1].To)

	// Thread resolves from the root with replies oldest first
	thread, err := sc.MessageService.GetThread(db, seller.ID, models.UserRoleUser, inquiry.Message.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.Message.ID, thread.Original.ID)
	require.Len(t, thread.Replies, 1)
	assert.Equal(t, outcome.Message.ID, thread.Replies[0].ID)
}

func TestReply_SellerOnlyWithAdminOverride(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	stranger := createUser(t, db, "غريب", "stranger@test.com", models.UserRoleUser)
	admin := createUser(t, db, "مدير", "admin@test.com", models.UserRoleAdmin)
	category := createCategory(t, db, "فرص عمل")
	product := createProduct(t, db, seller, category, 0, models.ProductStatusApproved)

	inquiry, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "هل الوظيفة متاحة؟",
	})
	require.NoError(t, err)

	_, err = sc.MessageService.Reply(db, stranger.ID, models.UserRoleUser, &dto.ReplyRequest{
		MessageID: inquiry.Message.ID,
		ToEmail:   "visitor@test.com",
		Subject:   "رد",
		Body:      "نعم",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = sc.MessageService.Reply(db, admin.ID, models.UserRoleAdmin, &dto.ReplyRequest{
		MessageID: inquiry.Message.ID,
		ToEmail:   "visitor@test.com",
		Subject:   "رد",
		Body:      "نعم، متاحة",
	})
	assert.NoError(t, err)
}

func TestUnreadCount_PerSellerAndAdminGlobal(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	sellerA := createUser(t, db, "بائع أ", "a@test.com", models.UserRoleUser)
	sellerB := createUser(t, db, "بائع ب", "b@test.com", models.UserRoleUser)
	admin := createUser(t, db, "مدير", "admin@test.com", models.UserRoleAdmin)
	category := createCategory(t, db, "الإلكترونيات")
	productA := createProduct(t, db, sellerA, category, 10, models.ProductStatusApproved)
	productB := createProduct(t, db, sellerB, category, 20, models.ProductStatusApproved)

	for i, p := range []*models.Product{productA, productA, productB} {
		_, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
			ProductID:  p.ID,
			SellerID:   p.UserID,
			BuyerName:  "زائر",
			BuyerEmail: "visitor@test.com",
			Body:       "سؤال",
		})
		require.NoError(t, err, "inquiry %d", i)
	}

	countA, err := sc.MessageService.UnreadCount(db, sellerA.ID, models.UserRoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), countA.Count)

	countB, err := sc.MessageService.UnreadCount(db, sellerB.ID, models.UserRoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countB.Count)

	countAdmin, err := sc.MessageService.UnreadCount(db, admin.ID, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), countAdmin.Count)
}

func TestInbox_OnlyRootMessagesOfOwnProducts(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	sellerA := createUser(t, db, "بائع أ", "a@test.com", models.UserRoleUser)
	sellerB := createUser(t, db, "بائع ب", "b@test.com", models.UserRoleUser)
	category := createCategory(t, db, "كاميرات احترافية")
	productA := createProduct(t, db, sellerA, category, 10, models.ProductStatusApproved)
	productB := createProduct(t, db, sellerB, category, 20, models.ProductStatusApproved)

	inquiry, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  productA.ID,
		SellerID:   sellerA.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "سؤال أول",
	})
	require.NoError(t, err)
	_, err = sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  productB.ID,
		SellerID:   sellerB.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "سؤال ثانٍ",
	})
	require.NoError(t, err)

	// A reply must not show up as an inbox entry
	_, err = sc.MessageService.Reply(db, sellerA.ID, models.UserRoleUser, &dto.ReplyRequest{
		MessageID: inquiry.Message.ID,
		ToEmail:   "visitor@test.com",
		Subject:   "رد",
		Body:      "تفضل",
	})
	require.NoError(t, err)

	inbox, err := sc.MessageService.Inbox(db, sellerA.ID, models.UserRoleUser, 1, 20)
	require.NoError(t, err)
	require.Len(t, inbox.Messages, 1)
	assert.Equal(t, int64(1), inbox.Total)
	assert.Equal(t, inquiry.Message.ID, inbox.Messages[0].ID)
}

func TestMarkRead_TogglesFlag(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "أزياء وإكسسوارات")
	product := createProduct(t, db, seller, category, 45, models.ProductStatusApproved)

	inquiry, err := sc.MessageService.SendInquiry(db, &dto.SendInquiryRequest{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "ما المقاسات المتوفرة؟",
	})
	require.NoError(t, err)

	resp, err := sc.MessageService.MarkRead(db, seller.ID, models.UserRoleUser, &dto.MarkReadRequest{
		MessageID: inquiry.Message.ID,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsRead)

	unread := false
	resp, err = sc.MessageService.MarkRead(db, seller.ID, models.UserRoleUser, &dto.MarkReadRequest{
		MessageID: inquiry.Message.ID,
		Read:      &unread,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsRead)
}
