package appointment

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// MaxValue is the largest amount the NUMERIC(10,2) column holds.
const MaxValue = 99999999.99

var valueRe = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// ParseValue accepts "150.50", "150,50" or "" and returns the amount rounded
// to cents. An empty input means no value.
func ParseValue(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "-") {
		return nil, httperr.Validation(CodeInvalidValue, "O valor não pode ser negativo.")
	}
	if !valueRe.MatchString(s) {
		return nil, httperr.Validation(CodeInvalidValue, "Valor inválido.")
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return nil, httperr.Validation(CodeInvalidValue, "Valor inválido.")
	}

	rounded := math.Round(v*100) / 100
	if rounded > MaxValue {
		return nil, httperr.Validation(CodeInvalidValue, "Valor acima do máximo permitido (99999999,99).")
	}
	return &rounded, nil
}
