package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	Id             *primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	InstanceId     string               `bson:"instance_id" json:"instance_id"`
	Hostname       string               `bson:"hostname" json:"hostname"`
	SignerAddress  string               `bson:"signer_address" json:"signer_address"`
	ChainId        string               `bson:"chain_id" json:"chain_id"`
	QueueBackend   string               `bson:"queue_backend" json:"queue_backend"`
	QueueDepth     map[MintStatus]int64 `bson:"queue_depth" json:"queue_depth"`
	Healthy        bool                 `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth      `bson:"service_healths" json:"service_healths"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}
