package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("mongo: connect failed")
	ErrUnavailable            = errors.New("mongo: ping failed")
)
