package errors

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/kelasfoto/kelasfoto/constant"
)

const mysqlErrDuplicateEntry = 1062

// FromDBError maps driver errors to the error taxonomy. A unique-constraint
// violation becomes a duplicate-field error naming the offending key; anything
// else is an internal error.
func FromDBError(err error) CustomError {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		if field := duplicateKeyField(mysqlErr.Message); field != "" {
			return SetCustomErrorWithDetail(constant.ErrDuplicateField, "duplicate value for "+field)
		}
		return SetCustomError(constant.ErrDuplicateField)
	}
	return SetCustomError(constant.ErrInternal)
}

// duplicateKeyField extracts the key name from a MySQL 1062 message of the
// form: Duplicate entry 'x' for key 'table.key_name'.
func duplicateKeyField(msg string) string {
	const marker = "for key '"
	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return ""
	}
	key := msg[idx+len(marker):]
	key = strings.TrimSuffix(key, "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key
}
