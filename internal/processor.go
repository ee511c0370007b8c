package internal

import "fmt"

// State is the position of one donation session in the step protocol.
// AwaitingFile, RetryPrompt and AwaitingConsent are suspension points: the
// processor has issued a RenderCommand and waits for the host's Response.
// Extracting and Donating are transient and never observed between calls.
type State int

const (
	StateAwaitingFile State = iota
	StateExtracting
	StateRetryPrompt
	StateAwaitingConsent
	StateDonating
	StateDone
	StateAborted
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case StateAwaitingFile:
		return "awaiting_file"
	case StateExtracting:
		return "extracting"
	case StateRetryPrompt:
		return "retry_prompt"
	case StateAwaitingConsent:
		return "awaiting_consent"
	case StateDonating:
		return "donating"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the state admits no further commands.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// Processor runs the step protocol for one platform within one session:
// prompt for a file, extract, retry on failure, ask for consent, donate on
// approval. It is a suspend/resume state machine: Start and Resume return
// the commands to issue next, with at most one RenderCommand per batch,
// always last. When a batch ends without a RenderCommand the run is over.
//
// Nothing escapes a Processor: parse and extraction failures become the
// retry path, unexpected response types become skips, and user refusal is a
// normal terminal state.
type Processor struct {
	platform  string
	mimeTypes string
	registry  *Registry
	sessionID string

	state   State
	log     Log
	results []ExtractionResult
}

// NewProcessor builds a processor for one platform/registry pair. The
// session ID namespaces the donation key.
func NewProcessor(platform, mimeTypes string, registry *Registry, sessionID string) *Processor {
	return &Processor{
		platform:  platform,
		mimeTypes: mimeTypes,
		registry:  registry,
		sessionID: sessionID,
		state:     StateAwaitingFile,
	}
}

// State returns the current protocol state.
func (p *Processor) State() State {
	return p.state
}

// Finished reports whether the processor reached a terminal state.
func (p *Processor) Finished() bool {
	return p.state.Terminal()
}

// Log exposes the session log, e.g. for the flow driver's audit trail.
func (p *Processor) Log() *Log {
	return &p.log
}

// Start issues the initial file prompt and suspends.
func (p *Processor) Start() []Command {
	p.transition(StateAwaitingFile, "prompt file selection")
	return []Command{p.promptFile()}
}

// Resume feeds the host's response to the outstanding RenderCommand and
// advances the protocol. Calling Resume on a finished processor returns no
// commands.
func (p *Processor) Resume(resp Response) []Command {
	switch p.state {
	case StateAwaitingFile:
		return p.resumeFile(resp)
	case StateRetryPrompt:
		return p.resumeRetry(resp)
	case StateAwaitingConsent:
		return p.resumeConsent(resp)
	default:
		return nil
	}
}

func (p *Processor) resumeFile(resp Response) []Command {
	payload, ok := resp.(StringResponse)
	if !ok {
		// Skip, or a response type the file prompt cannot produce.
		p.transition(StateAborted, "skip to next step")
		return nil
	}

	p.transition(StateExtracting, "extracting file")
	results, err := p.extract(payload.Value)
	if err != nil {
		p.transition(StateRetryPrompt, "prompt confirmation to retry file selection")
		return []Command{p.promptRetry()}
	}
	if allEmpty(results) {
		p.transition(StateRetryPrompt, "nothing extracted, prompt confirmation to retry")
		return []Command{p.promptRetry()}
	}

	p.results = results
	p.transition(StateAwaitingConsent, "extraction successful, go to consent form")
	return []Command{p.promptConsent()}
}

func (p *Processor) resumeRetry(resp Response) []Command {
	answer, ok := resp.(BoolResponse)
	if ok && answer.Value {
		p.transition(StateAwaitingFile, "retry file selection")
		return []Command{p.promptFile()}
	}
	p.transition(StateDone, "continue without donation")
	return nil
}

func (p *Processor) resumeConsent(resp Response) []Command {
	approved, ok := resp.(JSONResponse)
	if !ok {
		p.transition(StateDone, "consent declined")
		return nil
	}

	p.transition(StateDonating, "donating consent data")
	donate := &DonateCommand{
		Key:     fmt.Sprintf("%s-%s", p.sessionID, p.platform),
		Payload: string(approved.Value),
	}
	p.transition(StateDone, "donation issued")
	return []Command{donate}
}

// extract parses the payload and runs the registry. Extraction never
// returns partial errors; only an unparsable document fails here.
func (p *Processor) extract(payload string) ([]ExtractionResult, error) {
	doc, err := ParseDocument([]byte(payload))
	if err != nil {
		p.logf("cannot parse file: %v", err)
		return nil, err
	}
	return p.registry.Run(doc, &p.log), nil
}

func (p *Processor) promptFile() *RenderCommand {
	description := Translatable{
		"en": "Please follow the download instructions and choose the file that you stored on your device.",
		"nl": "Volg de download instructies en kies het bestand dat u opgeslagen heeft op uw apparaat.",
	}
	body := &FileInputPrompt{Description: description, MimeTypes: p.mimeTypes}
	return &RenderCommand{Page: NewDonationPage(p.platform, body)}
}

func (p *Processor) promptRetry() *RenderCommand {
	text := Translatable{
		"en": "Unfortunately, we cannot process your data. Please make sure that you downloaded your data in JSON format, and selected the correct file.",
		"nl": "Helaas, kunnen we uw bestand niet verwerken. Weet u zeker dat u het juiste bestand heeft gekozen? Ga dan verder. Probeer opnieuw als u een ander bestand wilt kiezen.",
	}
	body := &ConfirmPrompt{
		Text:   text,
		OK:     Translatable{"en": "Try again", "nl": "Probeer opnieuw"},
		Cancel: Translatable{"en": "Continue", "nl": "Verder"},
	}
	return &RenderCommand{Page: NewDonationPage(p.platform, body)}
}

func (p *Processor) promptConsent() *RenderCommand {
	bundle := BuildBundle(p.results, &p.log)
	return &RenderCommand{Page: NewDonationPage(p.platform, bundle.ConsentPrompt())}
}

func (p *Processor) transition(to State, message string) {
	p.state = to
	p.logf("%s: %s", to, message)
}

func (p *Processor) logf(format string, args ...any) {
	p.log.Append("debug", fmt.Sprintf("%s: %s", p.platform, fmt.Sprintf(format, args...)))
}

func allEmpty(results []ExtractionResult) bool {
	for _, r := range results {
		if !r.Empty() {
			return false
		}
	}
	return true
}
