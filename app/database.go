package app

import (
	"context"
	"crypto/rand"
	"errors"
	"os"
	"time"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

var ErrLockBusy = errors.New("resource is locked by another owner")

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) error
	FindOneAndUpdate(collection string, filter interface{}, sort interface{}, update interface{}, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error)
	Aggregate(collection string, pipeline interface{}, result interface{}) error

	XLock(resourceId string, ttl time.Duration) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	locker   *lock.Client
	purger   lock.Purger
}

var (
	DB Database
)

func (d *mongoDatabase) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()

	ctx, cancel := d.context()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority).SetTimeout(d.timeout))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker and the purger for expired locks
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := d.context()
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker
	d.purger = lock.NewPurger(locker)

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

// XLock locks a resource for exclusive access, expiring after ttl
func (d *mongoDatabase) XLock(resourceId string, ttl time.Duration) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	hostname, _ := os.Hostname()
	details := lock.LockDetails{
		Owner: InstanceId(),
		Host:  hostname,
		TTL:   uint(ttl.Seconds()),
	}

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, details)
	if errors.Is(err, lock.ErrAlreadyLocked) {
		// a crashed owner leaves its lock behind until the ttl passes
		if _, perr := d.purger.Purge(ctx); perr != nil {
			log.Warn("[DB] Error purging expired locks: ", perr)
			return "", ErrLockBusy
		}
		err = d.locker.XLock(ctx, resourceId, lockId, details)
	}
	if errors.Is(err, lock.ErrAlreadyLocked) {
		return "", ErrLockBusy
	}
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := d.context()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

func (d *mongoDatabase) createIndex(collection string, model mongo.IndexModel) error {
	ctx, cancel := d.context()
	defer cancel()
	_, err := d.db.Collection(collection).Indexes().CreateOne(ctx, model)
	return err
}

// Setup Indexes
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	log.Debug("[DB] Setting up indexes for mint requests")
	err := d.createIndex(models.CollectionMintRequests, mongo.IndexModel{
		Keys:    bson.D{{Key: "external_ref", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	err = d.createIndex(models.CollectionMintRequests, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return err
	}
	err = d.createIndex(models.CollectionMintRequests, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "last_checked_at", Value: 1}},
	})
	if err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for healthchecks")
	err = d.createIndex(models.CollectionHealthChecks, mongo.IndexModel{
		Keys:    bson.D{{Key: "instance_id", Value: 1}, {Key: "hostname", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for atomically updating the first matching value and returning it
func (d *mongoDatabase) FindOneAndUpdate(collection string, filter interface{}, sort interface{}, update interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if sort != nil {
		opts.SetSort(sort)
	}
	return d.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

// method for update single value in a collection
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for update multiple values in a collection
func (d *mongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error) {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		return id, nil
	}
	return primitive.NilObjectID, nil
}

func (d *mongoDatabase) Aggregate(collection string, pipeline interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()

	cursor, err := d.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
		timeout:  time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal("[DB] Error setting up locker: ", err)
	}
	log.Info("[DB] Database initialized")
}
