// services/authz.go - ownership-based authorization
package services

import "taskhub/models"

// Ownable is a resource with a single owning user.
type Ownable interface {
	OwnerID() uint
}

// OwnerGuard gates mutations on the ownership relation. Callers check that
// the resource exists before consulting the guard, so a denial is always a
// Forbidden rather than a NotFound.
type OwnerGuard struct{}

func (OwnerGuard) CanEdit(identity models.Identity, resource Ownable) bool {
	return resource.OwnerID() == identity.ID
}
