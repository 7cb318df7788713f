package i18n

// Message catalogs. Arabic strings are the ones shown to end users; the
// English catalog mirrors them for API clients that ask for it.
var catalog = map[string]map[string]string{
	"ar": {
		// errors, domain-specific
		"error.product.not_found":            "المنتج غير موجود",
		"error.product.forbidden":            "ليس لديك صلاحية لتعديل هذا المنتج",
		"error.category.not_found":           "الفئة غير موجودة",
		"error.category.conflict":            "لا يمكن حذف الفئة لوجود منتجات مرتبطة بها",
		"error.negotiation.not_found":        "العرض غير موجود",
		"error.negotiation.self_negotiation": "لا يمكنك التفاوض على سعر منتجك الخاص",
		"error.negotiation.invalid_amount":   "يرجى إدخال سعر صحيح",
		"error.negotiation.forbidden":        "غير مخول لك الرد على هذا العرض",
		"error.message.not_found":            "الرسالة غير موجودة",
		"error.message.forbidden":            "ليس لديك صلاحية للوصول إلى هذه الرسالة",
		"error.user.not_found":               "المستخدم غير موجود",
		"error.user.already_exists":          "البريد الإلكتروني مسجل بالفعل",
		"error.auth.invalid_credentials":     "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"error.auth.invalid_token":           "رابط إعادة التعيين غير صالح أو منتهي الصلاحية",

		// errors, generic fallbacks by code
		"error.validation_failed": "يرجى ملء جميع الحقول المطلوبة بشكل صحيح",
		"error.not_found":         "العنصر المطلوب غير موجود",
		"error.forbidden":         "ليس لديك صلاحية للقيام بهذا الإجراء",
		"error.unauthorized":      "يجب تسجيل الدخول أولاً",
		"error.database_error":    "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى",
		"error.internal_error":    "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى",
		"error.conflict":          "تعذر تنفيذ العملية بسبب تعارض في البيانات",
		"error.invalid_status":    "تم الرد على هذا العرض مسبقاً",
		"error.already_exists":    "هذا العنصر موجود بالفعل",

		// success messages
		"success.register":             "تم إنشاء الحساب بنجاح",
		"success.password.reset_sent":  "إذا كان البريد مسجلاً لدينا فستصلك رسالة لإعادة التعيين",
		"success.password.reset":       "تم تغيير كلمة المرور بنجاح",
		"success.product.created":      "تم إضافة المنتج بنجاح وهو الآن بانتظار الموافقة",
		"success.product.updated":      "تم تحديث المنتج بنجاح",
		"success.product.deleted":      "تم حذف المنتج بنجاح",
		"success.product.approved":     "تم قبول المنتج بنجاح",
		"success.product.rejected":     "تم رفض المنتج",
		"success.offer.sent":           "تم إرسال عرضك إلى البائع بنجاح",
		"success.offer.responded":      "تم الرد على العرض بنجاح",
		"success.message.sent":         "تم إرسال رسالتك إلى البائع بنجاح",
		"success.reply.sent":           "تم إرسال الرد بنجاح",
		"success.reply.email_delayed":  "تم حفظ الرد، ولكن قد يكون هناك تأخير في إرسال البريد الإلكتروني",
		"success.message.read_updated": "تم تحديث حالة الرسالة",
	},
	"en": {
		"error.product.not_found":            "Product not found",
		"error.product.forbidden":            "You are not allowed to modify this product",
		"error.category.not_found":           "Category not found",
		"error.category.conflict":            "Category still has products and cannot be deleted",
		"error.negotiation.not_found":        "Offer not found",
		"error.negotiation.self_negotiation": "You cannot negotiate the price of your own product",
		"error.negotiation.invalid_amount":   "Please enter a valid price",
		"error.negotiation.forbidden":        "You are not allowed to respond to this offer",
		"error.message.not_found":            "Message not found",
		"error.message.forbidden":            "You are not allowed to access this message",
		"error.user.not_found":               "User not found",
		"error.user.already_exists":          "Email is already registered",
		"error.auth.invalid_credentials":     "Invalid email or password",
		"error.auth.invalid_token":           "Password reset link is invalid or has expired",

		"error.validation_failed": "Please fill in all required fields correctly",
		"error.not_found":         "The requested item was not found",
		"error.forbidden":         "You are not allowed to perform this action",
		"error.unauthorized":      "Please sign in first",
		"error.database_error":    "An unexpected error occurred. Please try again",
		"error.internal_error":    "An unexpected error occurred. Please try again",
		"error.conflict":          "The operation could not be completed due to a data conflict",
		"error.invalid_status":    "This offer has already been responded to",
		"error.already_exists":    "This item already exists",

		"success.register":             "Account created successfully",
		"success.password.reset_sent":  "If the email is registered, a reset link has been sent",
		"success.password.reset":       "Password changed successfully",
		"success.product.created":      "Product added successfully and is awaiting approval",
		"success.product.updated":      "Product updated successfully",
		"success.product.deleted":      "Product deleted successfully",
		"success.product.approved":     "Product approved successfully",
		"success.product.rejected":     "Product rejected",
		"success.offer.sent":           "Your offer was sent to the seller",
		"success.offer.responded":      "Offer response saved",
		"success.message.sent":         "Your message was sent to the seller",
		"success.reply.sent":           "Reply sent successfully",
		"success.reply.email_delayed":  "Reply saved, but email delivery may be delayed",
		"success.message.read_updated": "Message read state updated",
	},
}
