package usecase

import (
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

// wrapStoreErr translates repository error kinds into usecase sentinels so
// handlers never inspect infra errors directly.
func wrapStoreErr(err error, notFound, duplicate error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey) && duplicate != nil:
		return errs.Mark(err, duplicate)
	default:
		return err
	}
}
