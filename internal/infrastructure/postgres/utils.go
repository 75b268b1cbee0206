package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Funeraria-api/internal/domain"
)

// classify traduce un error de pgx a la taxonomía remota del dominio.
//   - sin filas: domain.ErrNotFound
//   - conexión, recursos, operador o credenciales (clases 08, 53, 57, 28): domain.ErrRemoteUnavailable
//   - cualquier otro error del servidor (constraint, tipo, sintaxis): domain.ErrRemoteRejected
//   - el resto (red, plazo vencido, pool cerrado): domain.ErrRemoteUnavailable
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s: registro duplicado", domain.ErrRemoteRejected, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch sqlStateClass(pgErr.Code) {
		case "08", "53", "57", "28":
			return fmt.Errorf("%w: %s: %s (%s)", domain.ErrRemoteUnavailable, op, pgErr.Message, pgErr.Code)
		default:
			return fmt.Errorf("%w: %s: %s (%s)", domain.ErrRemoteRejected, op, pgErr.Message, pgErr.Code)
		}
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, op, err)
}

func sqlStateClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
