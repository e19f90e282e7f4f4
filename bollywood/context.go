package bollywood

// Context is handed to Actor.Receive for each message.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
	// Reply answers an Engine.Ask. It is a no-op for plain Send messages.
	Reply(response interface{})
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
	replyCh chan interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }

func (c *context) Reply(response interface{}) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- response:
	default:
	}
}
