package asd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownSagRod = errors.New("unknown sag rod type")

// SagRod describes how a purlin is braced about its weak axis
type SagRod int

const (
	SagRodNone      SagRod = 1 // no sag rod
	SagRodMidSpan   SagRod = 2 // one sag rod at mid span
	SagRodThirdSpan SagRod = 3 // sag rods at L/3
)

// Weak axis moment coefficients k in My = k·L²·Wx.
// The third span value is kept as the published literal.
var sagRodCoefficients = map[SagRod]decimal.Decimal{
	SagRodNone:      decimal.RequireFromString("0.125"),
	SagRodMidSpan:   decimal.RequireFromString("0.03125"),
	SagRodThirdSpan: decimal.RequireFromString("0.0114285714285714"),
}

// Coefficient returns the weak axis moment coefficient
func (s SagRod) Coefficient() (decimal.Decimal, error) {
	k, ok := sagRodCoefficients[s]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownSagRod, int(s))
	}
	return k, nil
}

func (s SagRod) String() string {
	switch s {
	case SagRodNone:
		return "none"
	case SagRodMidSpan:
		return "mid-span"
	case SagRodThirdSpan:
		return "third-span"
	}
	return fmt.Sprintf("SagRod(%d)", int(s))
}

// Description is the long form used in reports
func (s SagRod) Description() string {
	switch s {
	case SagRodNone:
		return "No sag rod"
	case SagRodMidSpan:
		return "Sag rod at mid span"
	case SagRodThirdSpan:
		return "Sag rods at L/3 of span"
	}
	return s.String()
}

// ParseSagRod accepts the numeric code or a name such as "none", "mid" or "third"
func ParseSagRod(v string) (SagRod, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "none", "no":
		return SagRodNone, nil
	case "2", "mid", "mid-span", "midspan", "middle":
		return SagRodMidSpan, nil
	case "3", "third", "third-span", "thirdspan", "l/3":
		return SagRodThirdSpan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSagRod, v)
}

// UnmarshalJSON accepts either the numeric code or a name
func (s *SagRod) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = SagRod(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownSagRod, data)
	}
	v, err := ParseSagRod(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalYAML accepts either the numeric code or a name
func (s *SagRod) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*s = SagRod(n)
		return nil
	}
	v, err := ParseSagRod(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
