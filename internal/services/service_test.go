package services_test

import (
	"errors"
	"testing"

	"flohmarkt_backend/database"
	"flohmarkt_backend/internal/config"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database per test so tests can run
// in parallel.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// fakeMailer records sends and can be flipped to fail.
type fakeMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func newTestContainer(t *testing.T, mailer *fakeMailer) *services.ServiceContainer {
	t.Helper()

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/static/uploads",
	})
	require.NoError(t, err)

	return services.NewServiceContainer(mailer, store)
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, owner *models.User, category *models.Category, price float64, status models.ProductStatus) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:       "هاتف مستعمل",
		Price:      price,
		Status:     status,
		CategoryID: category.ID,
		UserID:     owner.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
