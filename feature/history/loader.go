package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
}

// NewFeature creates the history feature. It is disabled when db is nil.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	repo := NewRepository(db)
	return &Feature{repo: repo, handler: NewHandler(repo, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil
}

// Load migrates the table and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Repository returns the feature's repository, or nil when disabled.
func (f *Feature) Repository() *Repository {
	return f.repo
}
