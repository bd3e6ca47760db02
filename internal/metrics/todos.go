package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTodoOperations = "todo_operations"
	LabelOperation     = "operation"

	OperationCreate   = "create"
	OperationUpdate   = "update"
	OperationComplete = "complete"
	OperationDelete   = "delete"
)

var TodoOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTodoOperations,
		Help:      "Total successful todo mutations",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)
