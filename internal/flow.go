package internal

import (
	"context"
	"fmt"
)

// Donation configures the flow for one platform: which registry parses its
// export and which mime types the file prompt accepts.
type Donation struct {
	Platform  string
	MimeTypes string
	Registry  *Registry
}

// TikTokDonation is the default flow configuration.
func TikTokDonation() Donation {
	return Donation{
		Platform:  "TikTok",
		MimeTypes: "application/json",
		Registry:  TikTokRegistry(),
	}
}

// Run drives one end-to-end session over the bridge: a fire-and-forget
// tracking event, one processor run, then the end page. All branching on
// user responses happens inside the processor.
func (d Donation) Run(ctx context.Context, sessionID string, bridge Bridge) error {
	tracking := &DonateCommand{
		Key:     fmt.Sprintf("%s-tracking", sessionID),
		Payload: `[{ "message": "user entered script" }]`,
	}
	if err := bridge.Donate(ctx, tracking); err != nil {
		return &DonationError{Key: tracking.Key, Err: err}
	}

	processor := NewProcessor(d.Platform, d.MimeTypes, d.Registry, sessionID)
	if err := drive(ctx, processor, bridge); err != nil {
		return err
	}
	LogInfo("%s donation flow finished in state %s", d.Platform, processor.State())

	_, err := bridge.Render(ctx, &RenderCommand{Page: NewEndPage()})
	return err
}

// drive owns the suspend/resume loop: it dispatches each command batch and
// feeds render responses back until the processor terminates. The batch
// contract (at most one RenderCommand, always last) keeps exactly one
// render outstanding at a time.
func drive(ctx context.Context, p *Processor, bridge Bridge) error {
	cmds := p.Start()
	for {
		var resp Response = SkipResponse{}
		suspended := false
		for _, cmd := range cmds {
			switch cmd := cmd.(type) {
			case *DonateCommand:
				if err := bridge.Donate(ctx, cmd); err != nil {
					return &DonationError{Key: cmd.Key, Err: err}
				}
			case *RenderCommand:
				r, err := bridge.Render(ctx, cmd)
				if err != nil {
					return err
				}
				resp = r
				suspended = true
			}
		}
		if !suspended {
			if !p.Finished() {
				return fmt.Errorf("processor stalled in state %s", p.State())
			}
			return nil
		}
		cmds = p.Resume(resp)
	}
}
