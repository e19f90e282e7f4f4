package bollywood

// Actor processes the messages of its mailbox one at a time.
type Actor interface {
	Receive(ctx Context)
}
