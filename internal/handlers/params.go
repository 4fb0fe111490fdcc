package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.Validation(domain.CodeInvalidID, "ID inválido.")
	}
	return uint(id), nil
}

// queryInt reads an optional integer query parameter. Absent means 0.
func queryInt(c *gin.Context, key, code, message string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.Validation(code, message)
	}
	return n, nil
}

// requireQuery returns the trimmed values of keys or one validation error
// naming every missing key.
func requireQuery(c *gin.Context, keys ...string) ([]string, error) {
	values := make([]string, len(keys))
	var missing []string
	for i, k := range keys {
		values[i] = strings.TrimSpace(c.Query(k))
		if values[i] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(
			domain.CodeMissingField,
			"Parâmetros obrigatórios ausentes: "+strings.Join(missing, ", ")+".",
		)
	}
	return values, nil
}

// actorID is the authenticated user, when the auth middleware ran.
func actorID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
