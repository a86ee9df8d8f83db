package mongo

import "time"

// Config holds the connection settings for the document store.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

const defaultConnectTimeout = 10 * time.Second
