package contact

import "github.com/chefdechef/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
