package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	AdminCollection    *mongo.Collection
	UserCollection     *mongo.Collection
	CourseCollection   *mongo.Collection
	PurchaseCollection *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB(mongoURI string) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			connectErr = fmt.Errorf("connect mongo: %w", connectErr)
			return
		}

		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("ping mongo: %w", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// InitCollections binds the package collections to dbName.
func InitCollections(dbName string) {
	AdminCollection = GetCollection(dbName, "admins")
	UserCollection = GetCollection(dbName, "users")
	CourseCollection = GetCollection(dbName, "courses")
	PurchaseCollection = GetCollection(dbName, "purchases")
}

// EnsureIndexes creates the unique indexes the services rely on.
// Usernames are unique per collection, admins and users are separate namespaces.
func EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	targets := []struct {
		coll  *mongo.Collection
		field string
	}{
		{AdminCollection, "username"},
		{UserCollection, "username"},
		{PurchaseCollection, "receiptId"},
	}
	for _, target := range targets {
		if _, err := target.coll.Indexes().CreateOne(ctx, unique(target.field)); err != nil {
			return fmt.Errorf("create index %s.%s: %w", target.coll.Name(), target.field, err)
		}
	}
	return nil
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
