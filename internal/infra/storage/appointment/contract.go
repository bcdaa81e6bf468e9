package appointment

import (
	"github.com/m04kA/SMC-ShopService/pkg/dbmetrics"
)

// The executor interface is shared with dbmetrics so the repository works
// over both *sql.DB and the metered wrapper.
type DBExecutor = dbmetrics.DBExecutor
