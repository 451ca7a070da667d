package model

// Administrator is an authenticated principal allowed to mutate the
// catalog. The password is held only as a bcrypt hash.
type Administrator struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte

	// Connected marks an active session. Advisory (welcome banner,
	// audit context); possession of the principal is the actual gate.
	Connected bool
}

func (a *Administrator) Connect() {
	a.Connected = true
}

func (a *Administrator) Disconnect() {
	a.Connected = false
}
