package internal

import "context"

// Command is an outbound message from the flow to the host boundary.
type Command interface {
	isCommand()
}

// RenderCommand asks the host to show a page. The flow suspends until the
// host answers with a Response; at most one RenderCommand is outstanding
// per session at any time.
type RenderCommand struct {
	Page Page
}

// DonateCommand hands a keyed payload to the collection endpoint. It is
// fire-and-forget: the flow continues without awaiting confirmation.
type DonateCommand struct {
	Key     string
	Payload string
}

func (*RenderCommand) isCommand() {}
func (*DonateCommand) isCommand() {}

// Bridge is the host boundary. Render blocks until the user responds;
// Donate returns as soon as the payload is handed off.
type Bridge interface {
	Render(ctx context.Context, cmd *RenderCommand) (Response, error)
	Donate(ctx context.Context, cmd *DonateCommand) error
}
