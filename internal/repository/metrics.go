package repository

import (
	"strings"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_repository_operations_total",
		Help: "Repository operations by entity, operation and outcome.",
	},
	[]string{"entity", "operation", "outcome"},
)

// observe records the outcome of one repository call. Intended for defer
// with a pointer to the named error result.
func observe(entity, operation string, errp *error) {
	outcome := "ok"
	if *errp != nil {
		outcome = strings.ToLower(apperrors.CodeOf(*errp))
	}
	operationsTotal.WithLabelValues(entity, operation, outcome).Inc()
}
