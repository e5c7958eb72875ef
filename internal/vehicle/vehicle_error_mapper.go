package vehicle

import (
	"errors"

	"go-opscentral/internal/shared/apperror"
	vehicleerrors "go-opscentral/internal/vehicle/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vehicleerrors.ErrVehicleNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return vehicleerrors.ErrPlateExists
	}

	return apperror.Backend(err)
}
