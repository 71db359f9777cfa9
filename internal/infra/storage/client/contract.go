package client

import "github.com/chefdechef/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

type rowScanner interface {
	Scan(dest ...interface{}) error
}
