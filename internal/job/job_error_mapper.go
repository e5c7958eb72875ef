package job

import (
	"errors"
	"strings"

	joberrors "go-opscentral/internal/job/errors"
	"go-opscentral/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return joberrors.ErrJobAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "jobs_pkey") {
		return joberrors.ErrJobAlreadyExists
	}

	// serialization failures (40001) land here too; the caller decides whether to resubmit
	return apperror.Backend(err)
}
