package namegen

import (
	"fmt"

	"petnames/internal/domain"
)

const (
	MsgGenerated      = "Name generated successfully"
	MsgGenerateFailed = "Failed to generate pet name"
	MsgBulkFailed     = "Failed to generate bulk pet names"
	msgGeneratedForF  = "Name generated for %s"
	msgBulkGeneratedF = "Generated %d pet name%s"
	DefaultCount      = 1
)

// Kind classifies a Result for callers that map outcomes onto a transport.
type Kind int

const (
	KindOK Kind = iota
	KindInvalid
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInvalid:
		return "invalid"
	case KindFailed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the envelope every generation operation returns.
// Names is empty whenever Success is false.
type Result struct {
	Success bool     `json:"success"`
	Names   []string `json:"names"`
	Message string   `json:"message"`

	Kind Kind  `json:"-"`
	Err  error `json:"-"`
}

func succeeded(names []string, message string) Result {
	return Result{Success: true, Names: names, Message: message, Kind: KindOK}
}

func rejected(reason string) Result {
	return Result{Names: []string{}, Message: reason, Kind: KindInvalid}
}

func failed(message string, err error) Result {
	return Result{Names: []string{}, Message: message, Kind: KindFailed, Err: err}
}

// Engine validates generation requests and composes names from a Source.
// It holds no mutable state of its own and is safe for concurrent use when
// its Source is.
type Engine struct {
	source Source
}

func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// Source returns the engine's name source.
func (e *Engine) Source() Source {
	return e.source
}

// GenerateDefault produces count generic names without validating count.
func (e *Engine) GenerateDefault(count int) Result {
	var names []string
	if err := e.draw(func() { names = composeNames(e.source, count) }); err != nil {
		return failed(MsgGenerateFailed, err)
	}
	return succeeded(names, MsgGenerated)
}

// GenerateByAnimalType produces one "<pet> the <breed>" name for a supported animal type.
func (e *Engine) GenerateByAnimalType(raw string) Result {
	if v := ValidateAnimalType(e.source, raw); !v.Valid {
		return rejected(v.Reason)
	}

	trimmed := trimAnimalType(raw)
	var name string
	if err := e.draw(func() { name = composeAnimalName(e.source, categoryToken(trimmed)) }); err != nil {
		return failed(MsgGenerateFailed, err)
	}
	return succeeded([]string{name}, fmt.Sprintf(msgGeneratedForF, trimmed))
}

// GenerateBulk produces between MinBulkCount and MaxBulkCount generic names.
func (e *Engine) GenerateBulk(raw any) Result {
	n, v := ValidateCount(raw)
	if !v.Valid {
		return rejected(v.Reason)
	}

	var names []string
	if err := e.draw(func() { names = composeNames(e.source, n) }); err != nil {
		return failed(MsgBulkFailed, err)
	}
	suffix := ""
	if n != 1 {
		suffix = "s"
	}
	return succeeded(names, fmt.Sprintf(msgBulkGeneratedF, n, suffix))
}

// draw runs fn and converts a panic from the source into ErrSourceFailure.
func (e *Engine) draw(fn func()) (err error) {
	if e.source == nil {
		return fmt.Errorf("%w: no source configured", domain.ErrSourceFailure)
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", domain.ErrSourceFailure, p)
		}
	}()
	fn()
	return nil
}
