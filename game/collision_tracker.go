// File: game/collision_tracker.go
package game

// ContactKey names something the ball can stay in contact with for several
// frames.
type ContactKey struct {
	Wall   WallID
	Player PlayerID
}

func WallContact(id WallID) ContactKey     { return ContactKey{Wall: id} }
func PaddleContact(id PlayerID) ContactKey { return ContactKey{Player: id} }

// CollisionTracker remembers which contacts are ongoing so a collision that
// lasts several frames triggers its reaction only on the first one. It is
// owned by a single match loop and is not safe for concurrent use.
type CollisionTracker struct {
	active map[ContactKey]struct{}
}

func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{active: make(map[ContactKey]struct{})}
}

// Begin registers a contact and returns true only if it was not already active.
func (ct *CollisionTracker) Begin(key ContactKey) bool {
	if _, exists := ct.active[key]; exists {
		return false
	}
	ct.active[key] = struct{}{}
	return true
}

// End forgets a contact once the ball has separated.
func (ct *CollisionTracker) End(key ContactKey) {
	delete(ct.active, key)
}

func (ct *CollisionTracker) Active(key ContactKey) bool {
	_, exists := ct.active[key]
	return exists
}

func (ct *CollisionTracker) Len() int {
	return len(ct.active)
}

// Clear drops every contact, e.g. after the ball is served again.
func (ct *CollisionTracker) Clear() {
	clear(ct.active)
}
