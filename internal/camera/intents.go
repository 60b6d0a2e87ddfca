package camera

// motion is one discrete intent axis. Each axis only uses the two values
// that make sense for it plus still.
type motion uint8

const (
	still motion = iota
	left
	right
	forward
	backward
)

func (c *Camera) Forward()  { c.move = forward }
func (c *Camera) Backward() { c.move = backward }
func (c *Camera) StopMove() { c.move = still }

func (c *Camera) StrafeLeft()  { c.strafe = left }
func (c *Camera) StrafeRight() { c.strafe = right }
func (c *Camera) StopStrafe()  { c.strafe = still }

func (c *Camera) TurnLeft()  { c.turn = left }
func (c *Camera) TurnRight() { c.turn = right }
func (c *Camera) StopTurn()  { c.turn = still }

// Moving reports whether any intent is active.
func (c *Camera) Moving() bool {
	return c.move != still || c.strafe != still || c.turn != still
}
