package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ItineraryCollection  *mongo.Collection
	PurchasesCollection  *mongo.Collection
	FollowingsCollection *mongo.Collection
	NewsletterCollection *mongo.Collection
	UserCollection       *mongo.Collection
	Client               *mongo.Client
)

// Init connects to MongoDB and binds the collections. Called from main
// only when the mongo backend is selected.
func Init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("itinerodb")
	ItineraryCollection = database.Collection("itineraries")
	PurchasesCollection = database.Collection("itinerary_purchases")
	FollowingsCollection = database.Collection("users_following")
	NewsletterCollection = database.Collection("newsletter")
	UserCollection = database.Collection("users")

	createIndexes(database)
}

func createIndexes(database *mongo.Database) {
	unique := options.Index().SetUnique(true)

	_, err := NewsletterCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		log.Printf("newsletter index: %v", err)
	}

	_, err = PurchasesCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "userid", Value: 1}, {Key: "itineraryid", Value: 1}},
		Options: unique,
	})
	if err != nil {
		log.Printf("purchases index: %v", err)
	}

	_, err = ItineraryCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "creatorid", Value: 1}},
	})
	if err != nil {
		log.Printf("itineraries index: %v", err)
	}
}
