package story

import "github.com/google/uuid"

// The ownership policy is a set of pure predicates over a loaded story and
// the resolved principal id. Anonymous requesters pass uuid.Nil, which can
// never equal a stored owner id.

// CanView reports whether the given principal may read the story.
// Public stories are readable by anyone; private ones only by their owner.
func CanView(s *Story, principalID uuid.UUID) bool {
	if s == nil {
		return false
	}
	return s.Status == Public || IsOwner(s, principalID)
}

// IsOwner reports whether the given principal owns the story. Comparison
// is by canonical uuid value, never by string form.
func IsOwner(s *Story, principalID uuid.UUID) bool {
	if s == nil || principalID == uuid.Nil {
		return false
	}
	return s.OwnerID == principalID
}
