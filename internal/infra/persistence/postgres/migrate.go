package postgres

import (
	"cuida/internal/errors"
	"cuida/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the marketplace schema, including
// the service_offerers and service_feedbacks join tables declared on the
// association tags.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ServiceModel{},
		&model.UserDetailsModel{},
		&model.CurriculumModel{},
		&model.FeedbackModel{},
		&model.OrderModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
