package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AgenciesCollection      = "agencies"
	RoutesCollection        = "routes"
	TripsCollection         = "trips"
	StopsCollection         = "stops"
	TripStopsCollection     = "trip_stops"
	CalendarsCollection     = "calendars"
	CalendarDatesCollection = "calendar_dates"
)

var Collections = []string{
	AgenciesCollection,
	RoutesCollection,
	TripsCollection,
	StopsCollection,
	TripStopsCollection,
	CalendarsCollection,
	CalendarDatesCollection,
}

func createIndexes(ctx context.Context) {
	for _, collectionName := range Collections {
		collection := MongoGlobalInstance.Database.Collection(collectionName)

		_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "datasetid", Value: 1}},
			},
		}, options.CreateIndexes())
		if err != nil {
			log.Error().Err(err).Str("collection", collectionName).Msg("Creating Index")
		}
	}

	tripStopsCollection := MongoGlobalInstance.Database.Collection(TripStopsCollection)
	_, err := tripStopsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "record.tripid", Value: 1}, {Key: "record.stopsequence", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Str("collection", TripStopsCollection).Msg("Creating Index")
	}
}
