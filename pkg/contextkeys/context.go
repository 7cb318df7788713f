package contextkeys

// ContextKey is a typed key for values shared through contexts and the gin
// key-value store.
type ContextKey string

const (
	// DBContextKey holds the *gorm.DB (connection pool, or an open
	// transaction when the test harness injects one).
	DBContextKey ContextKey = "db"
)
