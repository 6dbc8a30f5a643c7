package models

import (
	"time"
)

type RunnerStatus struct {
	EthBlockNumber string `bson:"eth_block_number" json:"eth_block_number"`
	Processed      int64  `bson:"processed" json:"processed"`
	Failed         int64  `bson:"failed" json:"failed"`
}

type ServiceHealth struct {
	Name           string    `bson:"name" json:"name"`
	LastSyncTime   time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime   time.Time `bson:"next_sync_time" json:"next_sync_time"`
	EthBlockNumber string    `bson:"eth_block_number" json:"eth_block_number"`
	Processed      int64     `bson:"processed" json:"processed"`
	Failed         int64     `bson:"failed" json:"failed"`
	Healthy        bool      `bson:"healthy" json:"healthy"`
}
