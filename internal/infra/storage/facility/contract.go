package facility

import (
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (db или tx)
type DBExecutor = dbmetrics.DBExecutor
