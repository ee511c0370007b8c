package internal

// Translatable holds localized copies of one piece of UI text, keyed by
// language code ("en", "nl", "de"). The host picks the best match.
type Translatable map[string]string

// Text returns the translation for lang, falling back to English and then
// to any available translation.
func (t Translatable) Text(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t["en"]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}

// Prompt is the body of a donation page. It is a closed set: each variant
// corresponds to one kind of user interaction.
type Prompt interface {
	isPrompt()
}

// FileInputPrompt asks the user to select an export file.
type FileInputPrompt struct {
	Description Translatable `json:"description"`
	MimeTypes   string       `json:"mimeTypes"`
}

// ConfirmPrompt asks a yes/no question, e.g. whether to retry file selection.
type ConfirmPrompt struct {
	Text   Translatable `json:"text"`
	OK     Translatable `json:"ok"`
	Cancel Translatable `json:"cancel"`
}

// ProgressPrompt reports extraction progress while the user waits.
type ProgressPrompt struct {
	Description Translatable `json:"description"`
	Message     string       `json:"message"`
	Percentage  int          `json:"percentage"`
}

// ConsentPrompt presents the extracted tables for review and approval.
type ConsentPrompt struct {
	Tables     []Table `json:"tables"`
	MetaTables []Table `json:"metaTables"`
}

func (*FileInputPrompt) isPrompt() {}
func (*ConfirmPrompt) isPrompt()   {}
func (*ProgressPrompt) isPrompt()  {}
func (*ConsentPrompt) isPrompt()   {}

// Page is one screen the host renderer shows. A zero Platform with End set
// marks the terminal "thank you" page.
type Page struct {
	Platform string       `json:"platform,omitempty"`
	Header   Translatable `json:"header,omitempty"`
	Body     Prompt       `json:"-"`
	End      bool         `json:"end,omitempty"`
}

// NewDonationPage builds a page for one platform with a header derived from
// the platform name.
func NewDonationPage(platform string, body Prompt) Page {
	return Page{
		Platform: platform,
		Header:   Translatable{"en": platform, "nl": platform},
		Body:     body,
	}
}

// NewEndPage builds the terminal page shown after the flow completes.
func NewEndPage() Page {
	return Page{End: true}
}
