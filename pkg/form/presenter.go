package form

// Keyboard is the keyboard layout hint passed to the presenter.
type Keyboard int

const (
	KeyboardDefault Keyboard = iota
	KeyboardEmail
)

// ReturnKey is the return key hint passed to the presenter.
type ReturnKey int

const (
	ReturnDefault ReturnKey = iota
	// ReturnDone marks the last field on a screen.
	ReturnDone
)

// Default style identifiers. They are opaque to this package and only
// forwarded to the presenter.
const (
	DefaultTitleStyle = "grayLabel14"
	DefaultInputStyle = "defaultTextField"
	DefaultHintStyle  = "errorLabel14"
	DefaultErrorColor = "error"
	DefaultTitle      = "Email"
)

// Appearance is everything a presenter needs to initialize a field's widgets.
type Appearance struct {
	Title       string
	Placeholder string
	TitleStyle  string
	InputStyle  string
	HintStyle   string
	// Hint is the custom error, shown before the first validation.
	Hint        string
	ErrorColor  string
	Secure      bool
	Keyboard    Keyboard
	ReturnKey   ReturnKey
	Autocorrect bool
}

// State is passed to the presenter after every validity assignment.
type State struct {
	Valid    bool
	Hint     string
	ShowHint bool
}

// Presenter renders a field. Init runs on construction and on every setup;
// Render runs on every validity assignment, before the change callback.
type Presenter interface {
	Init(Appearance)
	Render(State)
}

// NopPresenter discards all presentation calls.
type NopPresenter struct{}

func (NopPresenter) Init(Appearance) {}
func (NopPresenter) Render(State)    {}
