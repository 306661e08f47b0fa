package config

import (
	"fmt"
	"strings"
)

// OutputFmt is the format of build results.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota
	OutputFmtJSON
	OutputFmtYAML
)

var outputFmtNames = []string{"text", "json", "yaml"}

func (o OutputFmt) String() string {
	if o < 0 || int(o) >= len(outputFmtNames) {
		return fmt.Sprintf("OutputFmt(%d)", int(o))
	}
	return outputFmtNames[o]
}

// OutputFmtNames returns list of known output format names.
func OutputFmtNames() []string {
	return append([]string(nil), outputFmtNames...)
}

// ParseOutputFmt converts name to OutputFmt, case insensitive.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a valid output format, try [%s]", name, strings.Join(outputFmtNames, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (o OutputFmt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
