// Package auth holds the authorization evaluator: a pure decision
// function over the acting identity, the attempted action and the
// target resource. It has no persistence dependencies so it can be
// exercised directly in tests.
package auth

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// elevatedRoles is the closed set of roles that bypass ownership
// checks for administrative mutation. Everything not listed here is a
// standard-tier role.
var elevatedRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleManager: true,
}

func (r Role) Elevated() bool {
	return elevatedRoles[r]
}

type Action string

const (
	ActionCreate  Action = "create"
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionCancel  Action = "cancel"
)

type ResourceKind string

const (
	ResourceOrder    ResourceKind = "order"
	ResourceCategory ResourceKind = "category"
	ResourceProduct  ResourceKind = "product"
	ResourceMessage  ResourceKind = "message"
	ResourceUser     ResourceKind = "user"
)

// Actor is the resolved identity for the current operation. The
// middleware only admits active users, so the evaluator assumes the
// actor is already active.
type Actor struct {
	Id   uint
	Role Role
}

// Resource identifies the target of an action. OwnerIds is the set of
// user ids considered owners of the resource (for a message: sender
// and receiver). Kinds whose mutations are elevated-only carry no
// owner set.
type Resource struct {
	Kind     ResourceKind
	OwnerIds []uint
}

type Decision struct {
	Allow  bool
	Reason string
}

func (d Decision) Allowed() bool {
	return d.Allow
}

func allow() Decision {
	return Decision{Allow: true}
}

func deny(reason string) Decision {
	return Decision{Allow: false, Reason: reason}
}

// Evaluate applies the capability rules in precedence order; the first
// matching rule wins.
//
//  1. update/delete/approve/cancel on orders, categories and products
//     require an elevated role. Ownership grants no exemption.
//  2. update/delete on a message require ownership or an elevated role.
//  3. read on a message follows the same rule as 2.
//  4. create and unrestricted reads are allowed for any active actor.
func Evaluate(actor Actor, action Action, resource Resource) Decision {
	switch resource.Kind {
	case ResourceOrder, ResourceCategory, ResourceProduct:
		if action == ActionUpdate || action == ActionDelete || action == ActionApprove || action == ActionCancel {
			if actor.Role.Elevated() {
				return allow()
			}
			return deny("not authorized")
		}
	case ResourceMessage:
		if action == ActionUpdate || action == ActionDelete || action == ActionRead {
			if isOwner(actor, resource) || actor.Role.Elevated() {
				return allow()
			}
			return deny("not authorized")
		}
	}
	return allow()
}

func isOwner(actor Actor, resource Resource) bool {
	for _, id := range resource.OwnerIds {
		if id == actor.Id {
			return true
		}
	}
	return false
}
