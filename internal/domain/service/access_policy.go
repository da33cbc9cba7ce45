package service

import "clinic/internal/domain/entity"

// AccessPolicy answers whether a role may perform an operation.
// It knows nothing about missing profiles; callers handle RoleUnassigned first.
type AccessPolicy interface {
	Allowed(role entity.Role, op entity.Operation) (bool, error)
}
