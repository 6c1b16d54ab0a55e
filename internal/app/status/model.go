package status

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Message struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

func Info(text string) Message    { return Message{Text: text, Kind: KindInfo} }
func Success(text string) Message { return Message{Text: text, Kind: KindSuccess} }
func Error(text string) Message   { return Message{Text: text, Kind: KindError} }

// Reporter is the write side of a status region.
type Reporter interface {
	Show(msg Message)
}
