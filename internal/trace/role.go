package trace

// Role is how a renderer should draw one slot of a step.
type Role int

const (
	RoleIdle Role = iota
	RoleOutside
	RoleSorted
	RoleBoundary
	RoleMin
	RoleCompare
	RoleKey
	RolePivot
	RoleSwap
)

var roleNames = [...]string{"idle", "outside", "sorted", "boundary", "min", "compare", "key", "pivot", "swap"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Role classifies slot k. When several annotations point at k the most
// specific one wins: swap, pivot, key, compare, min, boundary, sorted.
func (s Step) Role(k int) Role {
	switch {
	case k == s.SwapA || k == s.SwapB:
		return RoleSwap
	case k == s.Pivot:
		return RolePivot
	case k == s.Key:
		return RoleKey
	case k == s.Compare || k == s.J:
		return RoleCompare
	case k == s.Min:
		return RoleMin
	case k == s.I:
		return RoleBoundary
	case s.Sorted(k):
		return RoleSorted
	case !s.InRange(k):
		return RoleOutside
	}
	return RoleIdle
}

// Roles classifies every slot of s.
func (s Step) Roles() []Role {
	out := make([]Role, len(s.Seq))
	for k := range s.Seq {
		out[k] = s.Role(k)
	}
	return out
}
