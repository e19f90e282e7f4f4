package bollywood

// Producer creates a fresh Actor instance for a process.
type Producer func() Actor

// Props carries what the Engine needs to spawn an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps creates Props for the given producer. It panics on a nil producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{
		producer:    producer,
		mailboxSize: defaultMailboxSize,
	}
}

// WithMailboxSize overrides the buffered mailbox capacity.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) produce() Actor {
	return p.producer()
}
