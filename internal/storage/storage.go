package storage

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrCategoryInUse  = errors.New("custom category is referenced by priced products")
	ErrCategoryExists = errors.New("custom category already exists")
	ErrProductExists  = errors.New("custom product already exists")
)
