package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a session bound to ctx that runs on tx when one is given,
// so repository calls join the service's sql transaction.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	conn := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	if tx != nil {
		conn.Statement.ConnPool = tx
	}
	return conn
}
