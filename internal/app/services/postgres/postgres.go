package postgres

import (
	"database/sql"
	"errors"
)

// ErrNoRowsAffected is returned by updates and deletes that matched nothing.
var ErrNoRowsAffected = errors.New("postgres: no rows affected")

type scanner interface {
	Scan(dest ...interface{}) error
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
