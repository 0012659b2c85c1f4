package config

const CurrentVersion = 1

const (
	DefaultMenuWidth = 30
	DefaultPrompt    = "=> "
)

type Config struct {
	Version int    `json:"version"`
	Menu    Menu   `json:"menu"`
	Shell   Shell  `json:"shell"`
	LogFile string `json:"logFile,omitempty"`
}

type Menu struct {
	// Width is the label column width in cells; 0 means DefaultMenuWidth.
	Width int `json:"width,omitempty"`
	// AbortKey lets Ctrl-C leave a shown menu without running anything.
	AbortKey         bool   `json:"abortKey,omitempty"`
	LogUnhandledKeys bool   `json:"logUnhandledKeys,omitempty"`
	SplashPath       string `json:"splashPath,omitempty"`
}

type Shell struct {
	Prompt    string            `json:"prompt,omitempty"`
	AllowExec bool              `json:"allowExec,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

func (c Config) MenuWidth() int {
	if c.Menu.Width <= 0 {
		return DefaultMenuWidth
	}
	return c.Menu.Width
}

func (c Config) Prompt() string {
	if c.Shell.Prompt == "" {
		return DefaultPrompt
	}
	return c.Shell.Prompt
}
