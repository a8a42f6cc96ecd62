package forecast

import "fmt"

// Format is an output format of the results.
type Format int

const (
	// Markdown tables, the default.
	Markdown Format = iota
	JSON
	Msgpack
)

func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case Msgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md", "":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "msgpack":
		return Msgpack, nil
	default:
		return 0, fmt.Errorf("unknown format: %q", s)
	}
}

// Set implements flag.Value.
func (f *Format) Set(s string) (err error) {
	*f, err = ParseFormat(s)
	return err
}
