package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init builds the validator singleton and registers custom rules.
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		_ = v.RegisterValidation("unique_ids", uniqueIDs)
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// uniqueIDs rejects a []uint64 containing the same id twice.
func uniqueIDs(fl gpvalidator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]uint64)
	if !ok {
		return false
	}
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}
