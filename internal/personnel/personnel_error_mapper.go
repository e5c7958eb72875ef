package personnel

import (
	"errors"

	personnelerrors "go-opscentral/internal/personnel/errors"
	"go-opscentral/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personnelerrors.ErrPersonnelNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return personnelerrors.ErrEmployeeIDExists
	}

	return apperror.Backend(err)
}
