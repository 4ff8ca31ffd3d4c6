package audit

// Recorder é o que os use cases enxergam da auditoria.
type Recorder interface {
	Dispatch(ev Event)
}

// NopRecorder descarta eventos; útil em testes.
type NopRecorder struct{}

func (NopRecorder) Dispatch(Event) {}

var (
	_ Recorder = (*Dispatcher)(nil)
	_ Recorder = NopRecorder{}
)
