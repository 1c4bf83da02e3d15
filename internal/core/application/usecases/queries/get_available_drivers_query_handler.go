package queries

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler retrieves drivers marked available,
// the candidate pool for transport assignment.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query sorted by full name.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			phone,
			license_number,
			experience_years
		FROM drivers
		WHERE is_available = ?
		ORDER BY full_name
	`, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetAvailableDriversQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.Phone,
			&resp.LicenseNumber,
			&resp.ExperienceYears,
		); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
