package database

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fintrack/backend/internal/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	for _, register := range []func() error{
		func() error { return cb.Query().After("*").Register("fintrack:after_query", queryCallback) },
		func() error { return cb.Query().After("*").Register("fintrack:after_query_general", generalCallback) },
		func() error { return cb.Create().After("*").Register("fintrack:after_create", createUpdateCallback) },
		func() error { return cb.Create().After("*").Register("fintrack:after_create_general", generalCallback) },
		func() error { return cb.Update().After("*").Register("fintrack:after_update", createUpdateCallback) },
		func() error { return cb.Update().After("*").Register("fintrack:after_update_general", generalCallback) },
		func() error { return cb.Delete().After("*").Register("fintrack:after_delete_general", generalCallback) },
	} {
		if err := register(); err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		db.Error = models.NotFound(strings.TrimSuffix(name, "s"))
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = models.ErrEmailInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}
